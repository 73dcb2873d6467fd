package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	ctxRequestIdKey   ctxKey = "REQUEST_ID"
	ctxLoggerKey      ctxKey = "LOGGER"
	ctxBearerTokenKey ctxKey = "BEARER_TOKEN"
)

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func getRequestIdFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxRequestIdKey).(uuid.UUID)
	return id, ok
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

// getLoggerOrBaseLogger returns the request scoped logger, or the API's
// logger outside of a request.
func (a *API) getLoggerOrBaseLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey).(*slog.Logger); ok {
		return logger
	}
	return a.logger
}

func ctxWithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxBearerTokenKey, token)
}

func getBearerTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxBearerTokenKey).(string)
	return token, ok && token != ""
}
