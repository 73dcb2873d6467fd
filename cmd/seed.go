package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

// seedLocalEvent makes sure a paid demo event exists so a local checkout can
// be started without the event service.
func seedLocalEvent(ctx context.Context, repo events.Repository, rawID string, logger *slog.Logger) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("SEED_EVENT_ID must be a UUID: %w", err)
	}

	err = repo.CreateEvent(ctx, events.Event{
		ID:       id,
		Version:  1,
		Name:     "Local Demo Tournament",
		Currency: events.DefaultCurrency,
		Tickets: []events.TicketOption{
			{Name: "VIP", Price: money.New(150000, events.DefaultCurrency)},
			{Name: "General Admission", Price: money.New(49900, events.DefaultCurrency)},
			{Name: "Kids"},
		},
	})

	var eventErr *events.Error
	if errors.As(err, &eventErr) && eventErr.Reason == events.REASON_EVENT_ALREADY_EXISTS {
		logger.Info("Demo event already seeded", slog.String("event-id", id.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed demo event: %w", err)
	}

	logger.Info("Seeded demo event", slog.String("event-id", id.String()))
	return nil
}
