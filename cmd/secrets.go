package main

import (
	"context"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/api"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// getServiceKey returns the key this service presents to the event backend.
// Locally it comes straight from SERVICE_KEY.
func getServiceKey(ctx context.Context, cfg aws.Config, settings Settings) (string, error) {
	if settings.Env == api.LOCAL {
		return settings.ServiceKey, nil
	}

	client := ssm.NewFromConfig(cfg)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(settings.ServiceKeyParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get service key from ssm: %w", err)
	}

	return aws.ToString(out.Parameter.Value), nil
}
