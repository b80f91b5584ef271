package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gcn-portal/internal/config"
	"github.com/gcn-portal/internal/infrastructure/awscfg"
	"github.com/gcn-portal/internal/infrastructure/cognito"
	"github.com/gcn-portal/internal/infrastructure/dynamo"
	jwtinfra "github.com/gcn-portal/internal/infrastructure/jwt"
	"github.com/gcn-portal/internal/infrastructure/smtp"
	transporthttp "github.com/gcn-portal/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slog.SetDefault(newLogger(cfg.AppEnv))

	awsCfg, err := awscfg.Load(context.Background(), cfg)
	if err != nil {
		log.Fatalf("aws: %v", err)
	}
	endpoint := awscfg.Endpoint(cfg)

	dynamoClient := dynamo.NewClient(awsCfg, endpoint)
	if cfg.BootstrapTables {
		dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)
	}

	verifier, err := jwtinfra.NewVerifier(cfg)
	if err != nil {
		log.Fatalf("token verifier: %v", err)
	}

	if cfg.CognitoUserPoolID == "" && !cfg.AppEnv.IsDevelopment() {
		log.Fatal("COGNITO_USER_POOL_ID is required in production")
	}
	idp := cognito.NewClient(cognito.NewAPI(awsCfg, endpoint), cfg.CognitoUserPoolID)

	deps := &transporthttp.Deps{
		NotificationRepo: dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.EmailNotifications),
		SubscriptionRepo: dynamo.NewSubscriptionRepo(dynamoClient, cfg.DynamoTables.EmailNotificationSubscriptions),
		CredentialRepo:   dynamo.NewCredentialRepo(dynamoClient, cfg.DynamoTables.ClientCredentials),
		IdentityProvider: idp,
		Verifier:         verifier,
		Mailer:           smtp.NewMailer(cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
