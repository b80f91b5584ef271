package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gcn-portal/internal/application/credential"
	"github.com/gcn-portal/internal/application/identity"
	"github.com/gcn-portal/internal/application/notification"
	"github.com/gcn-portal/internal/config"
	"github.com/gcn-portal/internal/domain"
	"github.com/gcn-portal/internal/infrastructure/cognito"
	"github.com/gcn-portal/internal/transport/http/handler"
	appmiddleware "github.com/gcn-portal/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NotificationRepo NotificationRepository
	SubscriptionRepo SubscriptionRepository
	CredentialRepo   CredentialRepository
	IdentityProvider IdentityProvider
	Verifier         TokenVerifier
	Mailer           Mailer
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	resolver := identity.NewResolver(identity.ResolverDeps{
		Groups:    deps.IdentityProvider,
		Refresh:   cfg.RefreshGroups,
		Env:       cfg.AppEnv,
		Tolerable: cognito.IsAllowedInDevelopment,
		CacheTTL:  cfg.GroupCacheTTL,
	})
	authMw := appmiddleware.Auth(deps.Verifier, resolver)

	// Issuing credentials creates a user-pool client per call.
	issueRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.CredentialRateLimit), cfg.CredentialRateBurst)

	notifSvc := notification.NewService(notification.ServiceDeps{
		NotificationRepo: deps.NotificationRepo,
		SubscriptionRepo: deps.SubscriptionRepo,
		Mailer:           deps.Mailer,
	})
	credSvc := credential.NewService(credential.ServiceDeps{
		CredentialRepo: deps.CredentialRepo,
		Provider:       deps.IdentityProvider,
		Env:            cfg.AppEnv,
		Tolerable:      cognito.IsAllowedInDevelopment,
	})

	healthH := handler.NewHealthHandler(map[string]handler.Probe{
		"dynamodb": storageProbe(deps.NotificationRepo),
	})
	notifH := handler.NewEmailNotificationHandler(notifSvc)
	credH := handler.NewCredentialHandler(credSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Get("/notice-types", handler.ListNoticeTypes)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/me", handler.Me)

			r.Get("/email-notifications", notifH.List)
			r.Post("/email-notifications", notifH.Create)
			r.Post("/email-notifications/test", notifH.SendTest)
			r.Get("/email-notifications/{uuid}", notifH.Get)
			r.Put("/email-notifications/{uuid}", notifH.Update)
			r.Delete("/email-notifications/{uuid}", notifH.Delete)

			r.Get("/client-credentials", credH.List)
			r.With(issueRL.Limit).Post("/client-credentials", credH.Issue)
			r.Delete("/client-credentials/{client_id}", credH.Revoke)
			r.Get("/groups", credH.Groups)

			// Operator-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireGroup(cfg.OperatorGroup))

				r.Get("/subscriptions/{topic}/recipients", notifH.Recipients)
			})
		})
	})

	return r
}

// storageProbe reads a key that never exists. Reaching the table and finding
// nothing counts as healthy.
func storageProbe(repo NotificationRepository) handler.Probe {
	return func(ctx context.Context) error {
		_, err := repo.Get(ctx, "health-check", "health-check")
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
}
