// Command recipients prints the addresses subscribed to a topic, one per
// line, as read from the email_notification_subscription view.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gcn-portal/internal/application/notification"
	"github.com/gcn-portal/internal/config"
	"github.com/gcn-portal/internal/infrastructure/awscfg"
	"github.com/gcn-portal/internal/infrastructure/dynamo"
	"github.com/joho/godotenv"
)

func main() {
	topic := flag.String("topic", "", "topic to look up, e.g. gcn.classic.voevent.SWIFT_BAT_GRB_POS_ACK")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline for the lookup")
	flag.Parse()
	if *topic == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	awsCfg, err := awscfg.Load(ctx, cfg)
	if err != nil {
		log.Fatalf("aws: %v", err)
	}
	client := dynamo.NewClient(awsCfg, awscfg.Endpoint(cfg))
	svc := notification.NewService(notification.ServiceDeps{
		NotificationRepo: dynamo.NewNotificationRepo(client, cfg.DynamoTables.EmailNotifications),
		SubscriptionRepo: dynamo.NewSubscriptionRepo(client, cfg.DynamoTables.EmailNotificationSubscriptions),
	})

	recipients, err := svc.Recipients(ctx, *topic)
	if err != nil {
		log.Fatalf("recipients: %v", err)
	}
	for _, r := range recipients {
		fmt.Println(r)
	}
}
