package checkout

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
)

type OrderService interface {
	RequestOrder(ctx context.Context, req payment.OrderRequest) (payment.Order, error)
	OpenGatewaySession(ctx context.Context, order payment.Order, buyer attendee.Attendee, description string, handlers gateway.Handlers) error
}

type PaymentVerifier interface {
	Verify(ctx context.Context, receipt gateway.Receipt) (payment.VerifiedPayment, error)
}

type RegistrationFinalizer interface {
	Finalize(ctx context.Context, payload registration.Payload) (registration.Result, error)
}

type OrderAbandoner interface {
	Forget(orderID string)
}

type Notifier interface {
	NotifyConfirmed(ctx context.Context, confirmation Confirmation) error
}

// Services are the collaborators one checkout session talks to.
type Services struct {
	Orders    OrderService
	Verifier  PaymentVerifier
	Finalizer RegistrationFinalizer
	Abandoner OrderAbandoner
	Notifier  Notifier
}

type envelope struct {
	event Event
	reply chan outcome
}

type outcome struct {
	checkout Checkout
	err      error
}

// Orchestrator owns a single checkout. Every transition happens on the
// goroutine running Run; commands run on their own goroutines and report
// back through the same queue.
type Orchestrator struct {
	services Services
	repo     Repository
	logger   *slog.Logger
	now      func() time.Time

	inbox    chan envelope
	stopped  chan struct{}
	snapshot atomic.Pointer[Checkout]
	effects  sync.WaitGroup

	persistedVersion int
}

func NewOrchestrator(c Checkout, services Services, repo Repository, logger *slog.Logger) *Orchestrator {
	o := &Orchestrator{
		services:         services,
		repo:             repo,
		logger:           logger.With(slog.String("checkout-id", c.ID.String())),
		now:              time.Now,
		inbox:            make(chan envelope),
		stopped:          make(chan struct{}),
		persistedVersion: c.Version,
	}
	o.snapshot.Store(&c)
	return o
}

func (o *Orchestrator) Snapshot() Checkout {
	return *o.snapshot.Load()
}

// Done is closed once the orchestrator stops accepting events.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.stopped
}

// Send applies ev and returns the resulting checkout. Commands triggered by
// ev are still running when Send returns.
func (o *Orchestrator) Send(ctx context.Context, ev Event) (Checkout, error) {
	reply := make(chan outcome, 1)

	select {
	case o.inbox <- envelope{event: ev, reply: reply}:
	case <-o.stopped:
		return o.Snapshot(), NewCheckoutClosedError()
	case <-ctx.Done():
		return o.Snapshot(), ctx.Err()
	}

	select {
	case out := <-reply:
		return out.checkout, out.err
	case <-ctx.Done():
		return o.Snapshot(), ctx.Err()
	}
}

// Run processes events until the checkout is closed or ctx is cancelled. A
// cancelled checkout that is VERIFYING keeps running until the payment
// settles as CONFIRMED or FAILED. Run returns once every command it started
// has finished.
func (o *Orchestrator) Run(ctx context.Context) {
	defer o.effects.Wait()
	defer close(o.stopped)

	for {
		select {
		case <-ctx.Done():
			if o.Snapshot().State == VERIFYING {
				o.settle(context.WithoutCancel(ctx))
			}
			o.logger.InfoContext(ctx, "Checkout orchestrator stopped", slog.String("reason", ctx.Err().Error()))
			return
		case env := <-o.inbox:
			if o.handle(ctx, env) {
				return
			}
		}
	}
}

// settle handles events until the checkout leaves VERIFYING. Verification and
// finalization outcomes always arrive, so this ends once they have.
func (o *Orchestrator) settle(ctx context.Context) {
	o.logger.InfoContext(ctx, "Waiting for payment to settle before stopping")

	for o.Snapshot().State == VERIFYING {
		if o.handle(ctx, <-o.inbox) {
			return
		}
	}
}

// handle applies one queued event and reports whether the checkout is now
// closed.
func (o *Orchestrator) handle(ctx context.Context, env envelope) bool {
	current := o.Snapshot()
	next, cmds, err := o.apply(ctx, current, env.event)
	if env.reply != nil {
		env.reply <- outcome{checkout: next, err: err}
	}
	if err != nil {
		return false
	}

	for _, cmd := range cmds {
		o.dispatch(ctx, cmd)
	}

	if next.Closed {
		o.logger.InfoContext(ctx, "Checkout closed", slog.String("state", next.State.String()))
		return true
	}
	return false
}

func (o *Orchestrator) apply(ctx context.Context, current Checkout, ev Event) (Checkout, []Command, error) {
	next, cmds, err := Transition(current, ev)
	if err != nil {
		level := slog.LevelInfo
		if isCommandResult(ev) {
			level = slog.LevelWarn
		}
		o.logger.Log(ctx, level, "Rejected checkout event",
			slog.String("event", eventName(ev)),
			slog.String("state", current.State.String()),
			slog.String("error", err.Error()),
		)
		return current, nil, err
	}

	next.Version = current.Version + 1
	next.UpdatedAt = o.now()
	o.snapshot.Store(&next)

	if err := o.repo.UpdateCheckout(ctx, next, o.persistedVersion); err != nil {
		o.logger.ErrorContext(ctx, "Failed to save checkout", slog.Int("version", next.Version), slog.String("error", err.Error()))
	} else {
		o.persistedVersion = next.Version
	}

	if next.State != current.State {
		o.logger.InfoContext(ctx, "Checkout transitioned",
			slog.String("event", eventName(ev)),
			slog.String("from", current.State.String()),
			slog.String("to", next.State.String()),
		)
	}

	return next, cmds, nil
}

func isCommandResult(ev Event) bool {
	switch ev.(type) {
	case OrderCreated, OrderCreationFailed, GatewayOpenFailed, GatewaySucceeded, GatewayDismissed,
		GatewayPaymentFailed, VerificationSucceeded, VerificationFailed, Finalized, FinalizeFailed:
		return true
	default:
		return false
	}
}

// post delivers a command outcome. Outcomes that arrive after the
// orchestrator stopped are dropped and a CHECKOUT_CLOSED error is returned.
func (o *Orchestrator) post(ev Event) error {
	select {
	case o.inbox <- envelope{event: ev}:
		return nil
	case <-o.stopped:
		o.logger.Warn("Dropped event for stopped checkout", slog.String("event", eventName(ev)))
		return NewCheckoutClosedError()
	}
}

func (o *Orchestrator) async(fn func()) {
	o.effects.Add(1)
	go func() {
		defer o.effects.Done()
		fn()
	}()
}

func (o *Orchestrator) dispatch(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case CreateOrder:
		o.async(func() {
			order, err := o.services.Orders.RequestOrder(ctx, c.Request)
			if err != nil {
				o.logger.ErrorContext(ctx, "Failed to create order", slog.String("error", err.Error()))
				o.post(OrderCreationFailed{Err: err})
				return
			}
			o.post(OrderCreated{Order: order})
		})

	case OpenGateway:
		orderID := c.Order.ID
		handlers := gateway.Handlers{
			OnSuccess: func(receipt gateway.Receipt) error {
				return o.post(GatewaySucceeded{OrderID: orderID, Receipt: receipt})
			},
			OnDismiss: func() error {
				return o.post(GatewayDismissed{OrderID: orderID})
			},
			OnPaymentFailed: func(reason string) error {
				return o.post(GatewayPaymentFailed{OrderID: orderID, Reason: reason})
			},
		}
		o.async(func() {
			if err := o.services.Orders.OpenGatewaySession(ctx, c.Order, c.Buyer, c.Description, handlers); err != nil {
				o.logger.ErrorContext(ctx, "Failed to open gateway session", slog.String("order-id", orderID), slog.String("error", err.Error()))
				o.post(GatewayOpenFailed{OrderID: orderID, Err: err})
			}
		})

	case AbandonOrder:
		o.services.Abandoner.Forget(c.OrderID)
		o.logger.InfoContext(ctx, "Abandoned order without voiding it", slog.String("order-id", c.OrderID))

	case VerifyPayment:
		// Verification and finalization are never cancelled by shutdown.
		ctx := context.WithoutCancel(ctx)
		o.async(func() {
			verified, err := o.services.Verifier.Verify(ctx, c.Receipt)
			if err != nil {
				o.logger.WarnContext(ctx, "Payment not verified",
					slog.String("order-id", c.OrderID),
					slog.String("payment-id", c.Receipt.PaymentID),
					slog.String("error", err.Error()),
				)
				o.post(VerificationFailed{OrderID: c.OrderID, Err: err})
				return
			}
			o.post(VerificationSucceeded{OrderID: c.OrderID, Payment: verified})
		})

	case FinalizeRegistration:
		ctx := context.WithoutCancel(ctx)
		o.async(func() {
			result, err := o.services.Finalizer.Finalize(ctx, c.Payload)
			if err != nil {
				o.logger.ErrorContext(ctx, "Payment verified but registration failed",
					slog.String("order-id", c.Payload.OrderID),
					slog.String("payment-id", c.Payload.PaymentReference),
					slog.String("event-ref", c.Payload.EventRef),
					slog.String("error", err.Error()),
				)
				o.post(FinalizeFailed{OrderID: c.Payload.OrderID, Err: err})
				return
			}
			o.post(Finalized{OrderID: c.Payload.OrderID, Result: result})
		})

	case NotifyConfirmed:
		o.async(func() {
			if err := o.services.Notifier.NotifyConfirmed(ctx, c.Confirmation); err != nil {
				o.logger.ErrorContext(ctx, "Failed to publish registration confirmation", slog.String("error", err.Error()))
			}
		})
	}
}
