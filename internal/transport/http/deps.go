package http

import (
	"context"

	"github.com/gcn-portal/internal/domain"
	jwtinfra "github.com/gcn-portal/internal/infrastructure/jwt"
)

// NotificationRepository is the minimal interface the router requires from the
// email_notification store.
type NotificationRepository interface {
	Put(ctx context.Context, n *domain.EmailNotification) error
	Get(ctx context.Context, sub, uuid string) (*domain.EmailNotification, error)
	ListBySub(ctx context.Context, sub string) ([]domain.EmailNotification, error)
	Update(ctx context.Context, sub, uuid string, updates map[string]interface{}) error
	Delete(ctx context.Context, sub, uuid string) error
}

// SubscriptionRepository is the minimal interface the router requires from the
// materialized subscription view.
type SubscriptionRepository interface {
	Put(ctx context.Context, row *domain.SubscriptionRow) error
	ListByUUID(ctx context.Context, uuid string) ([]domain.SubscriptionRow, error)
	// ListByTopic reads the topic-index GSI.
	ListByTopic(ctx context.Context, topic string) ([]domain.SubscriptionRow, error)
	Delete(ctx context.Context, uuid, topic string) error
}

// CredentialRepository is the minimal interface the router requires from the
// client_credentials store.
type CredentialRepository interface {
	Put(ctx context.Context, c *domain.ClientCredential) error
	Get(ctx context.Context, subiss, clientID string) (*domain.ClientCredential, error)
	ListBySubIss(ctx context.Context, subiss string) ([]domain.ClientCredential, error)
	Delete(ctx context.Context, subiss, clientID string) error
}

// IdentityProvider manages OAuth clients and group membership in the user pool.
type IdentityProvider interface {
	CreateClient(ctx context.Context, scope string) (string, string, error)
	DeleteClient(ctx context.Context, clientID string) error
	ListGroups(ctx context.Context, username string) ([]string, error)
}

// TokenVerifier checks bearer tokens.
type TokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

// Mailer sends plain-text emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}
