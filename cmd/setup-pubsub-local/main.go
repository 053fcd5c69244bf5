package main

import (
	"context"
	"flag"
	"time"

	applogger "amozeshgah/internal/logger"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const retention = 7 * 24 * time.Hour

// setupConfig is the subset of the app settings this tool needs; it does not
// touch the database.
type setupConfig struct {
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
	GCPProjectID        string `envconfig:"GCP_PROJECT_ID" required:"true"`
	PubSubPurchaseTopic string `envconfig:"PUBSUB_PURCHASE_TOPIC" required:"true"`
	PubSubEmulatorHost  string `envconfig:"PUBSUB_EMULATOR_HOST" required:"true"`
}

func loadSetupConfig() (setupConfig, error) {
	var cfg setupConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Creates the purchase events topic, its dead-letter topic and a pull
// subscription on the local Pub/Sub emulator.
func main() {
	reset := flag.Bool("reset", false, "delete every topic and subscription on the emulator first")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := loadSetupConfig()
	if err != nil {
		logger := applogger.New("development", "info")
		logger.Fatal().Msgf("Failed to load config: %v", err)
	}
	logger := applogger.New("development", cfg.LogLevel)
	if envErr != nil {
		logger.Warn().Msg("No .env file found, relying on system environment variables.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := pubsub.NewClient(ctx, cfg.GCPProjectID,
		option.WithEndpoint(cfg.PubSubEmulatorHost),
		option.WithoutAuthentication(),
	)
	if err != nil {
		logger.Fatal().Msgf("Failed to create Pub/Sub client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error().Msgf("Failed to close pubsub client: %v", err)
		}
	}()

	if *reset {
		resetLocalEmulator(ctx, client, logger)
	}

	topicID := cfg.PubSubPurchaseTopic
	dlqTopic := createTopicIfNotExists(ctx, client, logger, topicID+"-dlq")
	mainTopic := createTopicIfNotExists(ctx, client, logger, topicID)

	createSubscriptionIfNotExists(ctx, client, logger, topicID+"-sub", pubsub.SubscriptionConfig{
		Topic:            mainTopic,
		AckDeadline:      60 * time.Second,
		ExpirationPolicy: 31 * 24 * time.Hour,
		RetryPolicy: &pubsub.RetryPolicy{
			MinimumBackoff: 10 * time.Second,
			MaximumBackoff: 600 * time.Second,
		},
		DeadLetterPolicy: &pubsub.DeadLetterPolicy{
			DeadLetterTopic:     dlqTopic.String(),
			MaxDeliveryAttempts: 5,
		},
	})
	createSubscriptionIfNotExists(ctx, client, logger, topicID+"-dlq-sub", pubsub.SubscriptionConfig{
		Topic:       dlqTopic,
		AckDeadline: 60 * time.Second,
	})

	logger.Info().Str("topic", topicID).Msg("Pub/Sub setup for local environment complete.")
}

// resetLocalEmulator deletes all topics and subscriptions. Only point it at the emulator.
func resetLocalEmulator(ctx context.Context, client *pubsub.Client, logger zerolog.Logger) {
	subs := client.Subscriptions(ctx)
	for {
		sub, err := subs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Fatal().Msgf("Failed to list subscriptions: %v", err)
		}
		logger.Info().Msgf("Deleting subscription: %s", sub.ID())
		if err := sub.Delete(ctx); err != nil {
			logger.Warn().Msgf("Failed to delete subscription %s: %v", sub.ID(), err)
		}
	}

	topics := client.Topics(ctx)
	for {
		topic, err := topics.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Fatal().Msgf("Failed to list topics: %v", err)
		}
		logger.Info().Msgf("Deleting topic: %s", topic.ID())
		if err := topic.Delete(ctx); err != nil {
			logger.Warn().Msgf("Failed to delete topic %s: %v", topic.ID(), err)
		}
	}
}

func createTopicIfNotExists(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, topicID string) *pubsub.Topic {
	topic := client.Topic(topicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check if topic %s exists: %v", topicID, err)
	}
	if exists {
		logger.Info().Msgf("Topic %s already exists.", topicID)
		return topic
	}

	logger.Info().Msgf("Creating topic: %s with %v retention", topicID, retention)
	topic, err = client.CreateTopicWithConfig(ctx, topicID, &pubsub.TopicConfig{
		RetentionDuration: retention,
	})
	if err != nil {
		logger.Fatal().Msgf("Failed to create topic %s: %v", topicID, err)
	}
	return topic
}

func createSubscriptionIfNotExists(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, subID string, cfg pubsub.SubscriptionConfig) {
	exists, err := client.Subscription(subID).Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check if subscription %s exists: %v", subID, err)
	}
	if exists {
		logger.Info().Msgf("Subscription %s already exists.", subID)
		return
	}

	logger.Info().Msgf("Creating subscription %s", subID)
	if _, err := client.CreateSubscription(ctx, subID, cfg); err != nil {
		logger.Fatal().Msgf("Failed to create subscription '%s': %v", subID, err)
	}
}
