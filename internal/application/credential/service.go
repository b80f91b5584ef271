package credential

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gcn-portal/internal/config"
	"github.com/gcn-portal/internal/domain"
	"github.com/gcn-portal/internal/pkg/token"
	"github.com/gcn-portal/internal/pkg/validate"
	"golang.org/x/sync/errgroup"
)

// Lengths of the placeholder pair handed out when the identity provider is
// unreachable in development. They match what Cognito generates.
const (
	fallbackIDLen     = 26
	fallbackSecretLen = 51
)

// Service issues and revokes OAuth client credentials on behalf of a caller.
type Service interface {
	List(ctx context.Context, caller domain.Identity) ([]domain.ClientCredential, error)
	Issue(ctx context.Context, caller domain.Identity, in domain.ClientCredentialInput) (*domain.IssuedCredential, error)
	Revoke(ctx context.Context, caller domain.Identity, clientID string) error
	Groups(ctx context.Context, caller domain.Identity) ([]string, error)
}

type credentialStore interface {
	Put(ctx context.Context, c *domain.ClientCredential) error
	Get(ctx context.Context, subiss, clientID string) (*domain.ClientCredential, error)
	ListBySubIss(ctx context.Context, subiss string) ([]domain.ClientCredential, error)
	Delete(ctx context.Context, subiss, clientID string) error
}

type identityProvider interface {
	CreateClient(ctx context.Context, scope string) (string, string, error)
	DeleteClient(ctx context.Context, clientID string) error
}

type service struct {
	repo      credentialStore
	idp       identityProvider
	env       config.Environment
	tolerable func(error) bool
}

type ServiceDeps struct {
	CredentialRepo credentialStore
	Provider       identityProvider
	Env            config.Environment
	// Tolerable reports provider errors that development may paper over.
	Tolerable func(error) bool
}

func NewService(deps ServiceDeps) Service {
	tolerable := deps.Tolerable
	if tolerable == nil {
		tolerable = func(error) bool { return false }
	}
	return &service{
		repo:      deps.CredentialRepo,
		idp:       deps.Provider,
		env:       deps.Env,
		tolerable: tolerable,
	}
}

func (s *service) List(ctx context.Context, caller domain.Identity) ([]domain.ClientCredential, error) {
	if err := requireSubIss(caller); err != nil {
		return nil, err
	}
	creds, err := s.repo.ListBySubIss(ctx, caller.SubIss)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		creds = []domain.ClientCredential{}
	}
	return creds, nil
}

func (s *service) Issue(ctx context.Context, caller domain.Identity, in domain.ClientCredentialInput) (*domain.IssuedCredential, error) {
	if err := requireSubIss(caller); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrValidation)
	}
	if !slices.Contains(caller.Groups, in.Scope) {
		return nil, fmt.Errorf("user does not belong to scope %q: %w", in.Scope, domain.ErrForbidden)
	}

	clientID, secret, err := s.idp.CreateClient(ctx, in.Scope)
	if err != nil {
		if !s.suppressible(err) {
			return nil, fmt.Errorf("create client: %v: %w", err, domain.ErrUpstream)
		}
		slog.Warn("identity provider unavailable, issuing placeholder client credentials", "err", err)
		if clientID, secret, err = placeholderPair(); err != nil {
			return nil, err
		}
	}

	c := domain.ClientCredential{
		SubIss:   caller.SubIss,
		ClientID: clientID,
		Name:     in.Name,
		Scope:    in.Scope,
	}
	if err := s.repo.Put(ctx, &c); err != nil {
		return nil, err
	}
	return &domain.IssuedCredential{ClientCredential: c, ClientSecret: secret}, nil
}

func (s *service) Revoke(ctx context.Context, caller domain.Identity, clientID string) error {
	if err := requireSubIss(caller); err != nil {
		return err
	}
	if _, err := s.repo.Get(ctx, caller.SubIss, clientID); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		err := s.idp.DeleteClient(ctx, clientID)
		if err == nil {
			return nil
		}
		if s.suppressible(err) {
			slog.Warn("identity provider unavailable, client not deleted upstream", "client_id", clientID, "err", err)
			return nil
		}
		return fmt.Errorf("delete client: %v: %w", err, domain.ErrUpstream)
	})
	g.Go(func() error { return s.repo.Delete(ctx, caller.SubIss, clientID) })
	return g.Wait()
}

func (s *service) Groups(_ context.Context, caller domain.Identity) ([]string, error) {
	if err := requireSubIss(caller); err != nil {
		return nil, err
	}
	if caller.Groups == nil {
		return []string{}, nil
	}
	return caller.Groups, nil
}

// suppressible is true only outside production and only for allow-listed errors.
func (s *service) suppressible(err error) bool {
	return s.env.IsDevelopment() && s.tolerable(err)
}

func placeholderPair() (string, string, error) {
	id, err := token.Alnum(fallbackIDLen)
	if err != nil {
		return "", "", err
	}
	secret, err := token.Alnum(fallbackSecretLen)
	if err != nil {
		return "", "", err
	}
	return id, secret, nil
}

func requireSubIss(caller domain.Identity) error {
	if caller.Sub == "" || caller.SubIss == "" {
		return fmt.Errorf("not signed in: %w", domain.ErrForbidden)
	}
	return nil
}
