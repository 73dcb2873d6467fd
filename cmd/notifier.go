package main

import (
	"errors"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/api"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/notify"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// createNotifier logs confirmations locally and publishes them to SNS in prod.
func createNotifier(cfg aws.Config, logger *slog.Logger, settings Settings) (checkout.Notifier, error) {
	if settings.Env == api.LOCAL {
		return notify.NewLogNotifier(logger), nil
	}

	if settings.NotificationTopicARN == "" {
		return nil, errors.New("SNS_TOPIC_ARN must be set in PROD")
	}

	return notify.NewSNSNotifier(sns.NewFromConfig(cfg), settings.NotificationTopicARN, logger), nil
}
