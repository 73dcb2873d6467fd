package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var _ checkout.Repository = &DB{}

// Checkout snapshots are kept for a while after their last change so the
// buyer can still look up the outcome.
const checkoutRetention = 30 * 24 * time.Hour

type checkoutDynamo struct {
	PK               string
	SK               string
	ID               string
	Version          int
	EventRef         string
	EventName        string
	State            string
	Currency         string
	Offerings        []offeringDynamo
	Attendee         attendee.Attendee
	ActiveOrder      *payment.Order
	Finalizing       bool
	PaymentReference string
	Result           string
	Alert            string
	Closed           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ExpiresAt        int64
}

type offeringDynamo struct {
	Name            string
	UnitPriceAmount int64
	Quantity        int
}

const (
	checkoutEntityName = "CHECKOUT"
)

func checkoutPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", checkoutEntityName, id)
}

func checkoutSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", checkoutEntityName, id)
}

func newCheckoutDynamo(c checkout.Checkout) checkoutDynamo {
	offerings := c.Tickets.Offerings()
	stored := make([]offeringDynamo, 0, len(offerings))
	for _, o := range offerings {
		stored = append(stored, offeringDynamo{
			Name:            o.Name,
			UnitPriceAmount: o.UnitPrice.Amount(),
			Quantity:        o.Quantity,
		})
	}

	return checkoutDynamo{
		PK:               checkoutPK(c.ID),
		SK:               checkoutSK(c.ID),
		ID:               c.ID.String(),
		Version:          c.Version,
		EventRef:         c.EventRef,
		EventName:        c.EventName,
		State:            c.State.String(),
		Currency:         c.Tickets.Currency(),
		Offerings:        stored,
		Attendee:         c.Attendee,
		ActiveOrder:      c.ActiveOrder,
		Finalizing:       c.Finalizing,
		PaymentReference: c.PaymentReference,
		Result:           string(c.Result),
		Alert:            c.Alert,
		Closed:           c.Closed,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		ExpiresAt:        c.UpdatedAt.Add(checkoutRetention).Unix(),
	}
}

func checkoutFromCheckoutDynamo(c checkoutDynamo) (checkout.Checkout, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return checkout.Checkout{}, checkout.NewFailedToTranslateToDBModelError(fmt.Sprintf("Stored checkout has invalid ID %q", c.ID), err)
	}

	state, ok := checkout.ParseState(c.State)
	if !ok {
		return checkout.Checkout{}, checkout.NewFailedToTranslateToDBModelError(fmt.Sprintf("Stored checkout %s has unknown state %q", c.ID, c.State), nil)
	}

	offerings := make([]tickets.Offering, 0, len(c.Offerings))
	for _, o := range c.Offerings {
		offerings = append(offerings, tickets.Offering{
			Name:      o.Name,
			UnitPrice: money.New(o.UnitPriceAmount, c.Currency),
			Quantity:  o.Quantity,
		})
	}

	return checkout.Checkout{
		ID:               id,
		Version:          c.Version,
		EventRef:         c.EventRef,
		EventName:        c.EventName,
		State:            state,
		Tickets:          tickets.Restore(c.Currency, offerings),
		Attendee:         c.Attendee,
		ActiveOrder:      c.ActiveOrder,
		Finalizing:       c.Finalizing,
		PaymentReference: c.PaymentReference,
		Result:           registration.Status(c.Result),
		Alert:            c.Alert,
		Closed:           c.Closed,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}, nil
}

func (d *DB) CreateCheckout(ctx context.Context, c checkout.Checkout) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := newCheckoutDynamo(c)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return checkout.NewFailedToTranslateToDBModelError("Failed to convert Checkout to checkoutDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoItem.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return checkout.NewCheckoutAlreadyExistsError(fmt.Sprintf("Checkout with ID %q already exists", c.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return checkout.NewTimeoutError("CreateCheckout timed out")
		} else {
			return checkout.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

func (d *DB) UpdateCheckout(ctx context.Context, c checkout.Checkout, expectedVersion int) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	dynamoItem := newCheckoutDynamo(c)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return checkout.NewFailedToTranslateToDBModelError("Failed to convert Checkout to checkoutDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(expectedVersionConditional(expectedVersion)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return checkout.NewVersionConflictError(fmt.Sprintf("Checkout %q is not at version %d", c.ID, expectedVersion), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return checkout.NewTimeoutError("UpdateCheckout timed out")
		} else {
			return checkout.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

func (d *DB) GetCheckout(ctx context.Context, id uuid.UUID) (checkout.Checkout, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: checkoutPK(id)},
			"SK": &types.AttributeValueMemberS{Value: checkoutSK(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return checkout.Checkout{}, checkout.NewTimeoutError("GetCheckout timed out")
		}
		return checkout.Checkout{}, checkout.NewFailedToFetchError(fmt.Sprintf("Failed to fetch checkout with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return checkout.Checkout{}, checkout.NewCheckoutDoesNotExistError(fmt.Sprintf("Checkout with ID %q not found", id), nil)
	}

	var stored checkoutDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &stored)
	if err != nil {
		return checkout.Checkout{}, checkout.NewFailedToTranslateToDBModelError("Failed to unmarshal checkout from DB", err)
	}
	return checkoutFromCheckoutDynamo(stored)
}
