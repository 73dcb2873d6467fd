//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml openapi.yaml
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/google/uuid"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

type DB interface {
	events.Repository
	checkout.Repository
}

// SessionBackend is the event backend as seen by one signed in user.
type SessionBackend interface {
	payment.OrderBackend
	payment.VerificationBackend
	registration.Backend
}

type BackendFactory func(token string) SessionBackend

type API struct {
	db           DB
	registry     *checkout.Registry
	hub          *gateway.Hub
	backends     BackendFactory
	notifier     checkout.Notifier
	merchantName string
	logger       *slog.Logger
	env          Environment

	newID func() uuid.UUID
	now   func() time.Time
}

var _ StrictServerInterface = (*API)(nil)

func NewAPI(db DB, registry *checkout.Registry, hub *gateway.Hub, backends BackendFactory, notifier checkout.Notifier, merchantName string, logger *slog.Logger, env Environment) *API {
	return &API{
		db:           db,
		registry:     registry,
		hub:          hub,
		backends:     backends,
		notifier:     notifier,
		merchantName: merchantName,
		logger:       logger,
		env:          env,
		newID:        uuid.New,
		now:          time.Now,
	}
}

// Handler returns the full HTTP surface with validation, logging and CORS
// applied.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})
	r := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: a.requestErrorHandler,
	})

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.loggingMiddleware(),
		a.requestContextMiddleware(),
		a.corsMiddleware(),
	), nil
}

func (a *API) servicesFor(token string) checkout.Services {
	be := a.backends(token)

	return checkout.Services{
		Orders:    payment.NewCoordinator(be, a.hub, a.merchantName),
		Verifier:  payment.NewVerifier(be),
		Finalizer: registration.NewFinalizer(be),
		Abandoner: a.hub,
		Notifier:  a.notifier,
	}
}
