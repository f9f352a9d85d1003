package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// KeyRequestMeta is the key for storing request metadata in context.
const KeyRequestMeta ContextKey = "request_meta"

// RequestMeta carries the client network details of the current request so
// the audit trail can record them without depending on the HTTP layer.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// MetaFromEcho captures the client IP and user agent from an echo request.
func MetaFromEcho(c echo.Context) RequestMeta {
	return RequestMeta{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// WithRequestMeta returns a new context with the request metadata.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, KeyRequestMeta, meta)
}

// GetRequestMeta extracts the request metadata from context.Context.
// Missing metadata yields the zero value.
func GetRequestMeta(ctx context.Context) RequestMeta {
	if meta, ok := ctx.Value(KeyRequestMeta).(RequestMeta); ok {
		return meta
	}

	return RequestMeta{}
}
