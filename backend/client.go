package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
)

const ServiceKeyHeader = "X-Service-Key"

var (
	_ payment.OrderBackend        = &Client{}
	_ payment.VerificationBackend = &Client{}
	_ registration.Backend        = &Client{}
)

// Client calls the event backend on behalf of one signed in user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	serviceKey string
}

func NewClient(baseURL string, httpClient *http.Client, token string, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		token:      token,
		serviceKey: serviceKey,
	}
}

// Factory hands out clients that share a transport but carry different user
// credentials.
type Factory struct {
	baseURL    string
	httpClient *http.Client
	serviceKey string
}

func NewFactory(baseURL string, httpClient *http.Client, serviceKey string) *Factory {
	return &Factory{
		baseURL:    baseURL,
		httpClient: httpClient,
		serviceKey: serviceKey,
	}
}

func (f *Factory) ForToken(token string) *Client {
	return NewClient(f.baseURL, f.httpClient, token, f.serviceKey)
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	EventReference string `json:"event_reference"`
}

type createOrderResponse struct {
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	GatewayKey string `json:"gateway_key"`
}

func (c *Client) CreateOrder(ctx context.Context, req payment.OrderRequest) (payment.Order, error) {
	var resp createOrderResponse
	err := c.post(ctx, "/api/v1/payment/create-order", createOrderRequest{
		Amount:         req.Amount,
		Currency:       req.Currency,
		EventReference: req.EventRef,
	}, &resp)
	if err != nil {
		return payment.Order{}, err
	}

	return payment.Order{
		ID:         resp.OrderID,
		Amount:     resp.Amount,
		Currency:   resp.Currency,
		GatewayKey: resp.GatewayKey,
	}, nil
}

type verifyRequest struct {
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	GatewaySignature string `json:"gateway_signature"`
}

type verifyResponse struct {
	Status string `json:"status"`
}

func (c *Client) VerifyPayment(ctx context.Context, receipt gateway.Receipt) (payment.VerificationStatus, error) {
	var resp verifyResponse
	err := c.post(ctx, "/api/v1/payment/verify", verifyRequest{
		GatewayOrderID:   receipt.OrderID,
		GatewayPaymentID: receipt.PaymentID,
		GatewaySignature: receipt.Signature,
	}, &resp)
	if err != nil {
		return "", err
	}

	return payment.VerificationStatus(resp.Status), nil
}

type registerTicket struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type registerAttendee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type registerRequest struct {
	Tickets          []registerTicket `json:"tickets"`
	Attendee         registerAttendee `json:"attendee"`
	TotalAmount      float64          `json:"total_amount"`
	PaymentReference string           `json:"payment_reference"`
}

type registerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) FinalizeRegistration(ctx context.Context, payload registration.Payload) (registration.Result, error) {
	body := registerRequest{
		Tickets: make([]registerTicket, 0, len(payload.Tickets)),
		Attendee: registerAttendee{
			FirstName: payload.Attendee.FirstName,
			LastName:  payload.Attendee.LastName,
			Email:     payload.Attendee.Email,
			Phone:     payload.Attendee.Phone,
		},
		PaymentReference: payload.PaymentReference,
	}
	for _, t := range payload.Tickets {
		body.Tickets = append(body.Tickets, registerTicket{
			Name:      t.Name,
			Quantity:  t.Quantity,
			UnitPrice: tickets.MajorUnits(t.UnitPrice),
		})
	}
	if payload.TotalAmount != nil {
		body.TotalAmount = tickets.MajorUnits(payload.TotalAmount)
	}

	var resp registerResponse
	path := fmt.Sprintf("/api/v1/events/%s/register", url.PathEscape(payload.EventRef))
	if err := c.post(ctx, path, body, &resp); err != nil {
		return registration.Result{}, err
	}

	return registration.Result{
		Status:  registration.Status(resp.Status),
		Message: resp.Message,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return NewFailedToEncodeRequestError(fmt.Sprintf("Failed to encode request for %s", path), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return NewFailedToEncodeRequestError(fmt.Sprintf("Failed to build request for %s", path), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.serviceKey != "" {
		req.Header.Set(ServiceKeyHeader, c.serviceKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewRequestFailedError(fmt.Sprintf("Request to %s failed", path), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewRequestFailedError(fmt.Sprintf("Failed to read response from %s", path), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewUnexpectedStatusCodeError(resp.StatusCode, errorDetail(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return NewInvalidResponseError(fmt.Sprintf("Failed to decode response from %s", path), err)
	}

	return nil
}

// errorDetail pulls the human readable message out of an error body, falling
// back to the raw body.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(body))
}
