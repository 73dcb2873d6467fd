package payment

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/International-Combat-Archery-Alliance/ticket-checkout/payment")

// Order is a backend issued authorization to collect Amount through the
// gateway.
type Order struct {
	ID         string
	Amount     int64
	Currency   string
	GatewayKey string
}

type OrderRequest struct {
	// Amount is the checkout total rounded up to a whole currency unit.
	Amount   int64
	Currency string
	EventRef string
}

type OrderBackend interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}

// Coordinator gets an order from the backend and starts the gateway session
// that collects it.
type Coordinator struct {
	backend      OrderBackend
	launcher     gateway.Launcher
	merchantName string
}

func NewCoordinator(backend OrderBackend, launcher gateway.Launcher, merchantName string) *Coordinator {
	return &Coordinator{
		backend:      backend,
		launcher:     launcher,
		merchantName: merchantName,
	}
}

func (c *Coordinator) RequestOrder(ctx context.Context, req OrderRequest) (Order, error) {
	ctx, span := tracer.Start(ctx, "Coordinator.RequestOrder")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("order.amount", req.Amount),
		attribute.String("order.currency", req.Currency),
		attribute.String("event.ref", req.EventRef),
	)

	if req.Amount < 0 {
		err := NewOrderCreationError(fmt.Sprintf("Order amount must not be negative, got %d", req.Amount), nil)
		span.SetStatus(codes.Error, err.Error())
		return Order{}, err
	}

	order, err := c.backend.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order creation failed")
		return Order{}, NewOrderCreationError(fmt.Sprintf("Failed to create order for event %q", req.EventRef), err)
	}
	if order.ID == "" {
		span.SetStatus(codes.Error, "order without ID")
		return Order{}, NewOrderCreationError("Backend returned an order without an ID", nil)
	}

	span.SetAttributes(attribute.String("order.id", order.ID))
	return order, nil
}

// OpenGatewaySession hands the order to the gateway. The outcome is delivered
// later through exactly one of the handlers, never through the return value.
func (c *Coordinator) OpenGatewaySession(ctx context.Context, order Order, buyer attendee.Attendee, description string, handlers gateway.Handlers) error {
	ctx, span := tracer.Start(ctx, "Coordinator.OpenGatewaySession")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", order.ID))

	err := c.launcher.Open(ctx, gateway.Session{
		Key:         order.GatewayKey,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.ID,
		Name:        c.merchantName,
		Description: description,
		Prefill: gateway.Prefill{
			Name:  buyer.FullName(),
			Email: buyer.Email,
			Phone: buyer.Phone,
		},
	}, handlers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway open failed")
		return NewGatewayOpenFailedError(fmt.Sprintf("Failed to open gateway session for order %q", order.ID), err)
	}

	return nil
}
