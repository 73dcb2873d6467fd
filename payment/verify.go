package payment

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type VerificationStatus string

const (
	VERIFICATION_SUCCESS VerificationStatus = "success"
	VERIFICATION_FAILURE VerificationStatus = "failure"
)

type VerificationBackend interface {
	VerifyPayment(ctx context.Context, receipt gateway.Receipt) (VerificationStatus, error)
}

// VerifiedPayment is proof that the backend accepted a receipt. It can only
// be obtained from Verifier.Verify.
type VerifiedPayment struct {
	orderID   string
	paymentID string
}

func (v VerifiedPayment) OrderID() string {
	return v.orderID
}

func (v VerifiedPayment) PaymentID() string {
	return v.paymentID
}

func (v VerifiedPayment) IsZero() bool {
	return v.orderID == "" && v.paymentID == ""
}

type Verifier struct {
	backend VerificationBackend
}

func NewVerifier(backend VerificationBackend) *Verifier {
	return &Verifier{backend: backend}
}

// Verify fails closed: anything other than an explicit success from the
// backend is a PAYMENT_NOT_VERIFIED error.
func (v *Verifier) Verify(ctx context.Context, receipt gateway.Receipt) (VerifiedPayment, error) {
	ctx, span := tracer.Start(ctx, "Verifier.Verify")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.id", receipt.OrderID),
		attribute.String("payment.id", receipt.PaymentID),
	)

	if receipt.OrderID == "" || receipt.PaymentID == "" || receipt.Signature == "" {
		err := NewPaymentNotVerifiedError("Receipt is incomplete", nil)
		span.SetStatus(codes.Error, err.Error())
		return VerifiedPayment{}, err
	}

	status, err := v.backend.VerifyPayment(ctx, receipt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verification call failed")
		return VerifiedPayment{}, NewPaymentNotVerifiedError(fmt.Sprintf("Failed to verify payment %q", receipt.PaymentID), err)
	}
	if status != VERIFICATION_SUCCESS {
		span.SetStatus(codes.Error, "verification rejected")
		return VerifiedPayment{}, NewPaymentNotVerifiedError(fmt.Sprintf("Backend returned status %q for payment %q", status, receipt.PaymentID), nil)
	}

	return VerifiedPayment{orderID: receipt.OrderID, paymentID: receipt.PaymentID}, nil
}
