package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventstaff/hospitality-hub/internal/api/metrics"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

// HeaderIdempotencyKey identifies one form instance across retries.
const HeaderIdempotencyKey = "Idempotency-Key"

// maxKeyPeekBytes bounds how much of a JSON body is buffered to find the email.
const maxKeyPeekBytes = 64 << 10

// SubmissionGuard holds a short-lived lock per route and form key.
type SubmissionGuard interface {
	Acquire(ctx context.Context, route, formKey string) (token string, ok bool, err error)
	Release(ctx context.Context, route, formKey, token string) error
}

// KeyFunc derives a form key from the request. An empty result means the
// source has nothing to offer and the next one is tried.
type KeyFunc func(c echo.Context) string

// InFlight rejects a submission with domain.ErrSubmissionInFlight while an
// earlier one for the same form is still being handled. The form key comes
// from the Idempotency-Key header, then from each of keys in order, then from
// the authenticated account. Requests with no key pass through unguarded, as
// do requests arriving while the guard store is unreachable.
func InFlight(guard SubmissionGuard, route string, log zerolog.Logger, keys ...KeyFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := formKey(c, keys)
			if key == "" {
				return next(c)
			}

			token, ok, err := guard.Acquire(ctx, route, key)
			if err != nil {
				log.Warn().Err(err).Str("route", route).Msg("in-flight guard unavailable")
				return next(c)
			}
			if !ok {
				metrics.InFlightRejectedTotal.WithLabelValues(route).Inc()
				return domain.ErrSubmissionInFlight
			}
			defer func() {
				if err := guard.Release(context.WithoutCancel(ctx), route, key, token); err != nil {
					log.Warn().Err(err).Str("route", route).Msg("in-flight release failed")
				}
			}()

			return next(c)
		}
	}
}

func formKey(c echo.Context, keys []KeyFunc) string {
	if k := c.Request().Header.Get(HeaderIdempotencyKey); k != "" {
		return "key:" + k
	}
	for _, fn := range keys {
		if k := fn(c); k != "" {
			return k
		}
	}
	if id, _ := c.Get(KeyAccountID).(string); id != "" {
		return "acct:" + id
	}
	return ""
}

// BodyEmail keys a JSON form on its normalised "email" field. The body is
// restored so the handler can bind it afterwards.
func BodyEmail(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}

	peek, err := io.ReadAll(io.LimitReader(req.Body, maxKeyPeekBytes))
	req.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(peek), req.Body), req.Body}
	if err != nil {
		return ""
	}

	var form struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(peek, &form) != nil {
		return ""
	}
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if email == "" {
		return ""
	}
	return "email:" + email
}
