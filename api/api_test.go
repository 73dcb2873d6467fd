package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEvent = events.Event{ID: uuid.MustParse("6f1c2a9e-34b0-4c57-9d0e-1a2b3c4d5e6f"), Name: "Spring Open", Currency: "INR"}

type testServer struct {
	server   *httptest.Server
	db       *mockDB
	hub      *gateway.Hub
	registry *checkout.Registry
	notifier *mockNotifier

	// cancel stops every running checkout as a shutdown would.
	cancel context.CancelFunc

	mu     sync.Mutex
	tokens []string
}

func newTestServer(t *testing.T, backend *mockBackend) *testServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	ts := &testServer{
		db:       newMockDB(testEvent),
		hub:      gateway.NewHub(),
		notifier: &mockNotifier{},
		cancel:   cancel,
	}
	ts.registry = checkout.NewRegistry(ctx, ts.db, noopLogger)

	backends := func(token string) SessionBackend {
		ts.mu.Lock()
		defer ts.mu.Unlock()

		ts.tokens = append(ts.tokens, token)
		return backend
	}

	a := NewAPI(ts.db, ts.registry, ts.hub, backends, ts.notifier, "ICAA", noopLogger, LOCAL)
	handler, err := a.Handler()
	require.NoError(t, err)

	ts.server = httptest.NewServer(handler)
	t.Cleanup(func() {
		ts.server.Close()
		cancel()
		ts.registry.Wait()
	})

	return ts
}

func (ts *testServer) do(t *testing.T, method string, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer user-token")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp, buf.Bytes()
}

func (ts *testServer) start(t *testing.T) Checkout {
	t.Helper()

	resp, body := ts.do(t, http.MethodPost, fmt.Sprintf("/events/%s/checkouts", testEvent.ID), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	return decodeView(t, body)
}

// review takes a new checkout to REVIEWING with two default tickets.
func (ts *testServer) review(t *testing.T) Checkout {
	t.Helper()

	view := ts.start(t)
	base := "/checkouts/" + view.Id.String()

	steps := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, base + "/tickets/0/quantity", map[string]any{"delta": 2}},
		{http.MethodPost, base + "/continue", nil},
		{http.MethodPut, base + "/attendee", map[string]any{"field": "first_name", "value": "Ada"}},
		{http.MethodPut, base + "/attendee", map[string]any{"field": "last_name", "value": "Lovelace"}},
		{http.MethodPut, base + "/attendee", map[string]any{"field": "email", "value": "ada@example.com"}},
		{http.MethodPost, base + "/continue", nil},
	}
	for _, s := range steps {
		resp, body := ts.do(t, s.method, s.path, s.body)
		require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s: %s", s.method, s.path, body)
		view = decodeView(t, body)
	}

	require.Equal(t, REVIEWING, view.State)
	return view
}

func (ts *testServer) waitForState(t *testing.T, id uuid.UUID, state CheckoutState) Checkout {
	t.Helper()

	var view Checkout
	require.Eventually(t, func() bool {
		resp, body := ts.do(t, http.MethodGet, "/checkouts/"+id.String(), nil)
		if resp.StatusCode != http.StatusOK {
			return false
		}
		view = decodeView(t, body)
		return view.State == state
	}, 2*time.Second, 10*time.Millisecond)

	return view
}

func decodeView(t *testing.T, body []byte) Checkout {
	t.Helper()

	var view Checkout
	require.NoError(t, json.Unmarshal(body, &view), string(body))
	return view
}

func decodeError(t *testing.T, body []byte) Error {
	t.Helper()

	var apiErr Error
	require.NoError(t, json.Unmarshal(body, &apiErr), string(body))
	return apiErr
}

func TestPostEventCheckouts(t *testing.T) {
	t.Run("starts a checkout for the event", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		view := ts.start(t)

		assert.Equal(t, SELECTINGTICKETS, view.State)
		assert.Equal(t, testEvent.ID.String(), view.EventRef)
		assert.Equal(t, "Spring Open", view.EventName)
		assert.Equal(t, 1, view.Version)
		assert.False(t, view.InProgress)
		require.Len(t, view.Tickets, 1)
		assert.Equal(t, tickets.DefaultOfferingName, view.Tickets[0].Name)
		assert.Equal(t, 499.0, view.Tickets[0].UnitPrice)
		ts.mu.Lock()
		assert.Equal(t, []string{"user-token"}, ts.tokens)
		ts.mu.Unlock()

		_, err := ts.db.GetCheckout(context.Background(), view.Id)
		assert.NoError(t, err)
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/events/%s/checkouts", ts.server.URL, testEvent.ID), nil)
		require.NoError(t, err)
		resp, err := ts.server.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, 0, ts.registry.Len())
	})

	t.Run("unknown event", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		resp, body := ts.do(t, http.MethodPost, fmt.Sprintf("/events/%s/checkouts", uuid.New()), nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, NotFound, decodeError(t, body).Code)
	})

	t.Run("malformed event id is rejected by validation", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		resp, body := ts.do(t, http.MethodPost, "/events/not-a-uuid/checkouts", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, InputValidationError, decodeError(t, body).Code)
	})
}

func TestCheckoutFlow(t *testing.T) {
	t.Run("paid checkout confirms after a gateway success", func(t *testing.T) {
		var finalized registration.Payload
		backend := &mockBackend{
			FinalizeRegistrationFunc: func(ctx context.Context, payload registration.Payload) (registration.Result, error) {
				finalized = payload
				return registration.Result{Status: registration.SUCCESS}, nil
			},
		}
		ts := newTestServer(t, backend)
		view := ts.review(t)
		base := "/checkouts/" + view.Id.String()

		assert.Equal(t, 2, view.Totals.Count)
		assert.Equal(t, 998.0, view.Totals.Amount)

		resp, body := ts.do(t, http.MethodPost, base+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		assert.Equal(t, CREATINGORDER, decodeView(t, body).State)

		view = ts.waitForState(t, view.Id, AWAITINGGATEWAY)
		require.NotNil(t, view.Order)
		assert.Equal(t, "order_1", view.Order.OrderId)

		resp, body = ts.do(t, http.MethodGet, "/gateway/orders/order_1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		var session GatewaySession
		require.NoError(t, json.Unmarshal(body, &session))
		assert.Equal(t, int64(998), session.Amount)
		assert.Equal(t, "INR", session.Currency)
		assert.Equal(t, "ICAA", session.Name)
		assert.Equal(t, "rzp_test", session.Key)
		assert.Equal(t, "Ada Lovelace", session.Prefill.Name)
		assert.Equal(t, "ada@example.com", session.Prefill.Email)

		resp, body = ts.do(t, http.MethodPost, "/gateway/orders/order_1/success", map[string]any{
			"gateway_order_id":   "order_1",
			"gateway_payment_id": "pay_1",
			"gateway_signature":  "sig",
		})
		require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))

		view = ts.waitForState(t, view.Id, CONFIRMED)
		assert.True(t, view.Closed)
		assert.False(t, view.InProgress)
		assert.Equal(t, "pay_1", view.PaymentReference)
		assert.Equal(t, string(registration.SUCCESS), view.Result)
		assert.Equal(t, checkout.AlertRegistered, view.Alert)

		assert.Eventually(t, func() bool { return ts.notifier.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.Eventually(t, func() bool { return ts.registry.Len() == 0 }, time.Second, 10*time.Millisecond)
		assert.Equal(t, "pay_1", finalized.PaymentReference)
		assert.Equal(t, testEvent.ID.String(), finalized.EventRef)

		resp, body = ts.do(t, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, CheckoutClosed, decodeError(t, body).Code)
	})

	t.Run("dismissing the gateway returns to review", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.review(t)

		resp, _ := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ts.waitForState(t, view.Id, AWAITINGGATEWAY)

		resp, _ = ts.do(t, http.MethodPost, "/gateway/orders/order_1/dismiss", nil)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		view = ts.waitForState(t, view.Id, REVIEWING)
		assert.Nil(t, view.Order)

		resp, _ = ts.do(t, http.MethodPost, "/gateway/orders/order_1/dismiss", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("gateway failure shows the reason", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.review(t)

		resp, _ := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ts.waitForState(t, view.Id, AWAITINGGATEWAY)

		resp, _ = ts.do(t, http.MethodPost, "/gateway/orders/order_1/failure", map[string]any{"reason": "card declined"})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		view = ts.waitForState(t, view.Id, REVIEWING)
		assert.Equal(t, checkout.AlertPaymentFailed+"card declined", view.Alert)
	})

	t.Run("order creation failure returns to review", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{
			CreateOrderFunc: func(ctx context.Context, req payment.OrderRequest) (payment.Order, error) {
				return payment.Order{}, errors.New("backend down")
			},
		})
		view := ts.review(t)

		resp, _ := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		view = ts.waitForState(t, view.Id, REVIEWING)
		assert.Equal(t, checkout.AlertPaymentInitFailed, view.Alert)
		assert.Nil(t, view.Order)
	})

	t.Run("closing while awaiting the gateway forgets the session", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.review(t)

		resp, _ := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ts.waitForState(t, view.Id, AWAITINGGATEWAY)

		resp, body := ts.do(t, http.MethodDelete, "/checkouts/"+view.Id.String(), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		assert.True(t, decodeView(t, body).Closed)

		assert.Eventually(t, func() bool {
			_, ok := ts.hub.Session("order_1")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("gateway outcome after shutdown is refused", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.review(t)

		resp, _ := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ts.waitForState(t, view.Id, AWAITINGGATEWAY)

		ts.cancel()
		require.Eventually(t, func() bool { return ts.registry.Len() == 0 }, time.Second, 10*time.Millisecond)

		resp, body := ts.do(t, http.MethodPost, "/gateway/orders/order_1/success", map[string]any{
			"gateway_order_id":   "order_1",
			"gateway_payment_id": "pay_1",
			"gateway_signature":  "sig",
		})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, CheckoutClosed, decodeError(t, body).Code)

		stored, err := ts.db.GetCheckout(context.Background(), view.Id)
		require.NoError(t, err)
		assert.Equal(t, checkout.AWAITING_GATEWAY, stored.State)
		assert.Empty(t, stored.PaymentReference)
	})
}

func TestCheckoutRejections(t *testing.T) {
	t.Run("paying before review is an invalid transition", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/pay", nil)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, InvalidTransition, decodeError(t, body).Code)
	})

	t.Run("continuing without tickets", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/continue", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, NoTicketsSelected, decodeError(t, body).Code)
	})

	t.Run("unknown ticket index", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/tickets/5/quantity", map[string]any{"delta": 1})

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, NotFound, decodeError(t, body).Code)
	})

	t.Run("quantity whose total cannot be represented", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/tickets/0/quantity", map[string]any{"delta": 369674229934060})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, QuantityTooLarge, decodeError(t, body).Code)

		resp, body = ts.do(t, http.MethodGet, "/checkouts/"+view.Id.String(), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		after := decodeView(t, body)
		assert.Equal(t, 1, after.Version)
		assert.Equal(t, 0, after.Totals.Count)
		assert.Equal(t, 0.0, after.Totals.Amount)
		assert.Equal(t, 0, after.Tickets[0].Quantity)
	})

	t.Run("unknown attendee field is rejected by validation", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPut, "/checkouts/"+view.Id.String()+"/attendee", map[string]any{"field": "age", "value": "30"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, InputValidationError, decodeError(t, body).Code)
	})

	t.Run("quantity body without a delta", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		view := ts.start(t)

		resp, body := ts.do(t, http.MethodPost, "/checkouts/"+view.Id.String()+"/tickets/0/quantity", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, InputValidationError, decodeError(t, body).Code)
	})

	t.Run("unknown checkout", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})
		id := uuid.New()

		resp, body := ts.do(t, http.MethodGet, "/checkouts/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, NotFound, decodeError(t, body).Code)

		resp, _ = ts.do(t, http.MethodPost, "/checkouts/"+id.String()+"/continue", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("receipt for another order", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		resp, body := ts.do(t, http.MethodPost, "/gateway/orders/order_1/success", map[string]any{
			"gateway_order_id":   "order_2",
			"gateway_payment_id": "pay_1",
			"gateway_signature":  "sig",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, OrderMismatch, decodeError(t, body).Code)
	})

	t.Run("no parked gateway session", func(t *testing.T) {
		ts := newTestServer(t, &mockBackend{})

		resp, body := ts.do(t, http.MethodGet, "/gateway/orders/order_9", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, NotFound, decodeError(t, body).Code)
	})
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, &mockBackend{})

	t.Run("echoes a caller supplied id", func(t *testing.T) {
		id := uuid.New()
		req, err := http.NewRequest(http.MethodGet, ts.server.URL+"/gateway/orders/order_9", nil)
		require.NoError(t, err)
		req.Header.Set(requestIdHeader, id.String())

		resp, err := ts.server.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, id.String(), resp.Header.Get(requestIdHeader))
	})

	t.Run("generates one otherwise", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/gateway/orders/order_9", nil)

		_, err := uuid.Parse(resp.Header.Get(requestIdHeader))
		assert.NoError(t, err)
	})
}

func TestErrorResponse(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
		expectedCode   ErrorCode
	}{
		"invalid transition": {
			err:            checkout.NewInvalidTransitionError(checkout.REVIEWING, checkout.Continue{}),
			expectedStatus: http.StatusConflict,
			expectedCode:   InvalidTransition,
		},
		"stale order": {
			err:            checkout.NewStaleOrderError("order_1"),
			expectedStatus: http.StatusConflict,
			expectedCode:   StaleOrder,
		},
		"busy": {
			err:            checkout.NewCheckoutBusyError("verifying"),
			expectedStatus: http.StatusConflict,
			expectedCode:   CheckoutBusy,
		},
		"checkout storage timeout": {
			err:            checkout.NewTimeoutError("slow"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   Timeout,
		},
		"checkout write failure": {
			err:            checkout.NewFailedToWriteError("boom", nil),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   InternalError,
		},
		"unknown attendee field": {
			err:            attendee.NewUnknownFieldError(attendee.Field("age")),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   InvalidBody,
		},
		"missing offering": {
			err:            tickets.NewOfferingDoesNotExistError(3, 1),
			expectedStatus: http.StatusNotFound,
			expectedCode:   NotFound,
		},
		"quantity too large": {
			err:            tickets.NewQuantityTooLargeError(tickets.DefaultOfferingName),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   QuantityTooLarge,
		},
		"closed checkout": {
			err:            checkout.NewCheckoutClosedError(),
			expectedStatus: http.StatusConflict,
			expectedCode:   CheckoutClosed,
		},
		"wrapped deadline": {
			err:            fmt.Errorf("send: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   Timeout,
		},
		"anything else": {
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   InternalError,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := errorResponse(tc.err)

			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedCode, body.Code)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.3ms", formatDuration(2345*time.Microsecond))
}

func TestDomainError(t *testing.T) {
	a := NewAPI(newMockDB(), nil, nil, nil, nil, "ICAA", noopLogger, LOCAL)
	requestId := uuid.New()
	ctx := ctxWithRequestId(context.Background(), requestId)

	t.Run("server errors carry the request id", func(t *testing.T) {
		status, body := a.domainError(ctx, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error (request "+requestId.String()+")", body.Message)
	})

	t.Run("client errors do not", func(t *testing.T) {
		status, body := a.domainError(ctx, checkout.NewCheckoutClosedError())

		assert.Equal(t, http.StatusConflict, status)
		assert.NotContains(t, body.Message, requestId.String())
	})

	t.Run("response errors are written as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/checkouts/"+uuid.NewString(), nil).WithContext(ctx)

		a.responseErrorHandler(rec, req, checkout.NewCheckoutBusyError("verifying"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, CheckoutBusy, decodeError(t, rec.Body.Bytes()).Code)
	})

	t.Run("undecodable requests are input validation errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/gateway/orders/order_1/success", nil).WithContext(ctx)

		a.requestErrorHandler(rec, req, errors.New("unexpected end of JSON input"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, InputValidationError, decodeError(t, rec.Body.Bytes()).Code)
	})
}

func TestStrictHandlers(t *testing.T) {
	newAPI := func(t *testing.T) *API {
		t.Helper()

		ctx, cancel := context.WithCancel(context.Background())
		db := newMockDB(testEvent)
		registry := checkout.NewRegistry(ctx, db, noopLogger)
		t.Cleanup(func() {
			cancel()
			registry.Wait()
		})

		backends := func(token string) SessionBackend { return &mockBackend{token: token} }
		return NewAPI(db, registry, gateway.NewHub(), backends, &mockNotifier{}, "ICAA", noopLogger, LOCAL)
	}

	t.Run("start without a bearer token", func(t *testing.T) {
		a := newAPI(t)

		resp, err := a.PostEventCheckouts(context.Background(), PostEventCheckoutsRequestObject{EventId: testEvent.ID})
		require.NoError(t, err)

		switch r := resp.(type) {
		case PostEventCheckoutsdefaultJSONResponse:
			assert.Equal(t, http.StatusUnauthorized, r.StatusCode)
			assert.Equal(t, AuthError, r.Body.Code)
		default:
			t.Fatalf("unexpected response %T", resp)
		}
		assert.Equal(t, 0, a.registry.Len())
	})

	t.Run("start with a bearer token", func(t *testing.T) {
		a := newAPI(t)
		ctx := ctxWithBearerToken(context.Background(), "user-token")

		resp, err := a.PostEventCheckouts(ctx, PostEventCheckoutsRequestObject{EventId: testEvent.ID})
		require.NoError(t, err)

		created, ok := resp.(PostEventCheckouts201JSONResponse)
		require.True(t, ok, "unexpected response %T", resp)
		assert.Equal(t, SELECTINGTICKETS, created.State)
		assert.Equal(t, testEvent.ID.String(), created.EventRef)
		assert.Equal(t, 1, a.registry.Len())
	})

	t.Run("unknown checkout", func(t *testing.T) {
		a := newAPI(t)

		resp, err := a.GetCheckout(context.Background(), GetCheckoutRequestObject{CheckoutId: uuid.New()})
		require.NoError(t, err)

		switch r := resp.(type) {
		case GetCheckoutdefaultJSONResponse:
			assert.Equal(t, http.StatusNotFound, r.StatusCode)
			assert.Equal(t, NotFound, r.Body.Code)
		default:
			t.Fatalf("unexpected response %T", resp)
		}
	})

	t.Run("missing bodies", func(t *testing.T) {
		a := newAPI(t)
		ctx := context.Background()

		quantity, err := a.PostCheckoutTicketQuantity(ctx, PostCheckoutTicketQuantityRequestObject{CheckoutId: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, PostCheckoutTicketQuantitydefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, quantity)

		field, err := a.PutCheckoutAttendee(ctx, PutCheckoutAttendeeRequestObject{CheckoutId: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, PutCheckoutAttendeedefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, field)

		success, err := a.PostGatewayOrderSuccess(ctx, PostGatewayOrderSuccessRequestObject{OrderId: "order_1"})
		require.NoError(t, err)
		assert.Equal(t, PostGatewayOrderSuccessdefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, success)
	})

	t.Run("finished checkout is read from storage", func(t *testing.T) {
		a := newAPI(t)
		c := checkout.New(uuid.New(), testEvent, time.Now())
		c.State = checkout.FAILED
		c.Closed = true
		require.NoError(t, a.db.CreateCheckout(context.Background(), c))

		resp, err := a.GetCheckout(context.Background(), GetCheckoutRequestObject{CheckoutId: c.ID})
		require.NoError(t, err)

		got, ok := resp.(GetCheckout200JSONResponse)
		require.True(t, ok, "unexpected response %T", resp)
		assert.Equal(t, FAILED, got.State)
		assert.True(t, got.Closed)

		closed, err := a.PostCheckoutRestart(context.Background(), PostCheckoutRestartRequestObject{CheckoutId: c.ID})
		require.NoError(t, err)
		assert.Equal(t, PostCheckoutRestartdefaultJSONResponse{
			StatusCode: http.StatusConflict,
			Body:       Error{Code: CheckoutClosed, Message: checkout.NewCheckoutClosedError().Message},
		}, closed)
	})
}
