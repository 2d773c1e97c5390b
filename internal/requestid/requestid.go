// Package requestid carries the per-request correlation id from the inbound
// console request to the outbound backend calls made on its behalf.
package requestid

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Header is the HTTP header used on both the inbound and outbound side.
const Header = "X-Request-Id"

// maxLen bounds ids accepted from clients.
const maxLen = 128

type ctxKey struct{}

// New returns a fresh random id.
func New() string {
	return uuid.NewString()
}

// WithID stores id on ctx. An empty id leaves ctx unchanged.
func WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored on ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Sanitize returns a client-supplied id if it is usable, else "".
func Sanitize(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return id
}
