package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/trace"
)

const requestIdHeader = "X-Request-ID"

type middlewareFunc func(next http.Handler) http.Handler

// useMiddlewares wraps r so the last middleware runs first.
func useMiddlewares(r *http.ServeMux, middlewares ...middlewareFunc) http.Handler {
	var s http.Handler
	s = r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

func (a *API) requestContextMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()
			if fromHeader, err := uuid.Parse(r.Header.Get(requestIdHeader)); err == nil {
				requestId = fromHeader
			}
			w.Header().Set(requestIdHeader, requestId.String())

			logger := a.logger.With(slog.String("request-id", requestId.String()))
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				logger = logger.With(slog.String("trace-id", sc.TraceID().String()))
			}

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, logger)
			if token, ok := bearerToken(r); ok {
				ctx = ctxWithBearerToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			loggingRW := newLoggingResponseWriter(w)

			next.ServeHTTP(loggingRW, r)

			a.getLoggerOrBaseLogger(r.Context()).InfoContext(r.Context(),
				"Access log",
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: authenticateBearer,
		},
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			code := InternalError

			var requestErr *openapi3filter.RequestError
			var secErr *openapi3filter.SecurityRequirementsError
			if errors.As(err, &requestErr) {
				code = InputValidationError
			} else if errors.As(err, &secErr) {
				code = AuthError
			} else if opts.StatusCode == http.StatusNotFound {
				code = NotFound
			}

			a.writeJSON(r.Context(), w, opts.StatusCode, Error{
				Message: err.Error(),
				Code:    code,
			})
		},
	})
}

// authenticateBearer only checks that a bearer token is present. The token is
// forwarded to the event backend, which is what validates it.
func authenticateBearer(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecurityScheme == nil || input.SecurityScheme.Scheme != "bearer" {
		return fmt.Errorf("unsupported security scheme %q", input.SecuritySchemeName)
	}
	if _, ok := bearerToken(input.RequestValidationInput.Request); !ok {
		return errors.New("a bearer token is required")
	}
	return nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func (a *API) corsMiddleware() middlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case LOCAL:
		serverCors = cors.AllowAll()
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins: []string{"https://icaa.world"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowedHeaders: []string{"Authorization", "Content-Type", requestIdHeader},
			ExposedHeaders: []string{requestIdHeader},
			MaxAge:         300,
		})
	}

	return serverCors.Handler
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
