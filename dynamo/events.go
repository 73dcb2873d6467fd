package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var _ events.Repository = &DB{}

type eventDynamo struct {
	PK       string
	SK       string
	ID       string
	Version  int
	Name     string
	IsFree   bool
	Currency string
	Tickets  []ticketOptionDynamo
}

type ticketOptionDynamo struct {
	Name          string
	PriceAmount   int64
	PriceCurrency string
}

const (
	eventEntityName = "EVENT"
)

func eventPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func eventSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", eventEntityName, id)
}

func newEventDynamo(event events.Event) eventDynamo {
	ticketOptions := make([]ticketOptionDynamo, 0, len(event.Tickets))
	for _, t := range event.Tickets {
		ticketOptions = append(ticketOptions, ticketOptionToDynamo(t))
	}

	return eventDynamo{
		PK:       eventPK(event.ID),
		SK:       eventSK(event.ID),
		ID:       event.ID.String(),
		Version:  event.Version,
		Name:     event.Name,
		IsFree:   event.IsFree,
		Currency: event.Currency,
		Tickets:  ticketOptions,
	}
}

func eventFromEventDynamo(event eventDynamo) (events.Event, error) {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return events.Event{}, events.NewFailedToTranslateToDBModelError(fmt.Sprintf("Stored event has invalid ID %q", event.ID), err)
	}

	ticketOptions := make([]events.TicketOption, 0, len(event.Tickets))
	for _, t := range event.Tickets {
		ticketOptions = append(ticketOptions, ticketOptionFromDynamo(t))
	}

	return events.Event{
		ID:       id,
		Version:  event.Version,
		Name:     event.Name,
		IsFree:   event.IsFree,
		Currency: event.Currency,
		Tickets:  ticketOptions,
	}, nil
}

func ticketOptionToDynamo(opt events.TicketOption) ticketOptionDynamo {
	if opt.Price == nil {
		return ticketOptionDynamo{Name: opt.Name}
	}
	return ticketOptionDynamo{
		Name:          opt.Name,
		PriceAmount:   opt.Price.Amount(),
		PriceCurrency: opt.Price.Currency().Code,
	}
}

func ticketOptionFromDynamo(opt ticketOptionDynamo) events.TicketOption {
	if opt.PriceCurrency == "" {
		return events.TicketOption{Name: opt.Name}
	}
	return events.TicketOption{
		Name:  opt.Name,
		Price: money.New(opt.PriceAmount, opt.PriceCurrency),
	}
}

func (d *DB) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: eventPK(id)},
			"SK": &types.AttributeValueMemberS{Value: eventSK(id)},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return events.Event{}, events.NewTimeoutError("GetEvent timed out")
		}
		return events.Event{}, events.NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return events.Event{}, events.NewEventDoesNotExistsError(fmt.Sprintf("Event with ID %q not found", id), nil)
	}

	var event eventDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &event)
	if err != nil {
		return events.Event{}, events.NewFailedToTranslateToDBModelError("Failed to unmarshal event from DB", err)
	}
	return eventFromEventDynamo(event)
}

func (d *DB) CreateEvent(ctx context.Context, event events.Event) error {
	ctx, cancel := context.WithTimeoutCause(ctx, time.Second, events.NewTimeoutError("CreateEvent to DB took too long"))
	defer cancel()

	dynamoItem := newEventDynamo(event)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return events.NewFailedToTranslateToDBModelError("Failed to convert Event to eventDynamo", err)
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
			return events.NewEventAlreadyExistsError(fmt.Sprintf("Event with ID %q already exists", event.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return events.NewTimeoutError("CreateEvent timed out")
		} else {
			return events.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}
