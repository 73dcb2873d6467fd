package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const MessageTypeRegistrationConfirmed = "registration.confirmed"

var (
	_ checkout.Notifier = &SNSNotifier{}
	_ checkout.Notifier = &LogNotifier{}
)

type confirmationMessage struct {
	Type             string `json:"type"`
	CheckoutID       string `json:"checkout_id"`
	EventRef         string `json:"event_ref"`
	Email            string `json:"email"`
	PaymentReference string `json:"payment_reference"`
	Status           string `json:"status"`
}

func newConfirmationMessage(c checkout.Confirmation) confirmationMessage {
	return confirmationMessage{
		Type:             MessageTypeRegistrationConfirmed,
		CheckoutID:       c.CheckoutID.String(),
		EventRef:         c.EventRef,
		Email:            c.Email,
		PaymentReference: c.PaymentReference,
		Status:           string(c.Status),
	}
}

type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier tells subscribers of an SNS topic that a registration was
// confirmed so they can refresh their registration lists.
type SNSNotifier struct {
	client   Publisher
	topicARN string
	logger   *slog.Logger
}

func NewSNSNotifier(client Publisher, topicARN string, logger *slog.Logger) *SNSNotifier {
	return &SNSNotifier{
		client:   client,
		topicARN: topicARN,
		logger:   logger,
	}
}

func (n *SNSNotifier) NotifyConfirmed(ctx context.Context, c checkout.Confirmation) error {
	body, err := json.Marshal(newConfirmationMessage(c))
	if err != nil {
		return NewFailedToEncodeError("Failed to encode registration confirmation", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(MessageTypeRegistrationConfirmed),
			},
			"event_ref": {
				DataType:    aws.String("String"),
				StringValue: aws.String(c.EventRef),
			},
		},
	})
	if err != nil {
		return NewFailedToPublishError(fmt.Sprintf("Failed to publish confirmation for checkout %s", c.CheckoutID), err)
	}

	n.logger.InfoContext(ctx, "Published registration confirmation",
		slog.String("checkout-id", c.CheckoutID.String()),
		slog.String("message-id", aws.ToString(out.MessageId)),
	)
	return nil
}

// LogNotifier writes confirmations to the log. Used when running locally.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyConfirmed(ctx context.Context, c checkout.Confirmation) error {
	n.logger.InfoContext(ctx, "Registration confirmed",
		slog.String("type", MessageTypeRegistrationConfirmed),
		slog.String("checkout-id", c.CheckoutID.String()),
		slog.String("event-ref", c.EventRef),
		slog.String("payment-reference", c.PaymentReference),
		slog.String("status", string(c.Status)),
	)
	return nil
}
