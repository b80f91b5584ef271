package domain

// ClientCredential records an OAuth client issued to a user.
// PK: subiss, SK: client_id. The secret is never stored.
type ClientCredential struct {
	SubIss   string `json:"-" dynamodbav:"subiss"`
	ClientID string `json:"client_id" dynamodbav:"client_id"`
	Name     string `json:"name" dynamodbav:"name"`
	Scope    string `json:"scope" dynamodbav:"scope"`
}

// IssuedCredential is returned exactly once, at issuance.
type IssuedCredential struct {
	ClientCredential
	ClientSecret string `json:"client_secret"`
}

type ClientCredentialInput struct {
	Name  string `json:"name" validate:"required"`
	Scope string `json:"scope" validate:"required"`
}
