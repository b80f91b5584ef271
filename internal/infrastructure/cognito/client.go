package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// API is the subset of *cognitoidentityprovider.Client the adapter uses.
type API interface {
	CreateUserPoolClient(ctx context.Context, in *cip.CreateUserPoolClientInput, optFns ...func(*cip.Options)) (*cip.CreateUserPoolClientOutput, error)
	DeleteUserPoolClient(ctx context.Context, in *cip.DeleteUserPoolClientInput, optFns ...func(*cip.Options)) (*cip.DeleteUserPoolClientOutput, error)
	AdminListGroupsForUser(ctx context.Context, in *cip.AdminListGroupsForUserInput, optFns ...func(*cip.Options)) (*cip.AdminListGroupsForUserOutput, error)
}

// NewAPI creates a Cognito client. A non-nil endpoint redirects it to a
// local emulator.
func NewAPI(awsCfg aws.Config, endpoint *string) *cip.Client {
	return cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		if endpoint != nil {
			o.BaseEndpoint = endpoint
		}
	})
}

// Client manages OAuth app clients and group lookups in one user pool.
type Client struct {
	api        API
	userPoolID string
}

func NewClient(api API, userPoolID string) *Client {
	return &Client{api: api, userPoolID: userPoolID}
}

// autoGeneratedName is the app-client name shown in the Cognito console.
// The user-facing name lives in our own table.
const autoGeneratedName = "auto-generated"

// CreateClient registers a client_credentials app client restricted to scope
// and returns its generated id and secret.
func (c *Client) CreateClient(ctx context.Context, scope string) (string, string, error) {
	out, err := c.api.CreateUserPoolClient(ctx, &cip.CreateUserPoolClientInput{
		UserPoolId:                      aws.String(c.userPoolID),
		ClientName:                      aws.String(autoGeneratedName),
		AllowedOAuthFlows:               []types.OAuthFlowType{types.OAuthFlowTypeClientCredentials},
		AllowedOAuthFlowsUserPoolClient: true,
		AllowedOAuthScopes:              []string{scope},
		GenerateSecret:                  true,
	})
	if err != nil {
		return "", "", err
	}
	if out.UserPoolClient == nil || out.UserPoolClient.ClientId == nil || out.UserPoolClient.ClientSecret == nil {
		return "", "", errors.New("cognito did not return a client id and secret")
	}
	return *out.UserPoolClient.ClientId, *out.UserPoolClient.ClientSecret, nil
}

func (c *Client) DeleteClient(ctx context.Context, clientID string) error {
	_, err := c.api.DeleteUserPoolClient(ctx, &cip.DeleteUserPoolClientInput{
		UserPoolId: aws.String(c.userPoolID),
		ClientId:   aws.String(clientID),
	})
	return err
}

// ListGroups returns the names of every group username belongs to.
func (c *Client) ListGroups(ctx context.Context, username string) ([]string, error) {
	var (
		groups []string
		next   *string
	)
	for {
		out, err := c.api.AdminListGroupsForUser(ctx, &cip.AdminListGroupsForUserInput{
			UserPoolId: aws.String(c.userPoolID),
			Username:   aws.String(username),
			NextToken:  next,
		})
		if err != nil {
			return nil, fmt.Errorf("list groups for %s: %w", username, err)
		}
		for _, g := range out.Groups {
			if g.GroupName != nil {
				groups = append(groups, *g.GroupName)
			}
		}
		if out.NextToken == nil || *out.NextToken == "" {
			return groups, nil
		}
		next = out.NextToken
	}
}
