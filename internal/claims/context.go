// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package claims

import "context"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var claimsCtxKey = contextKey("claims")

// WithContext returns a copy of ctx carrying c.
func WithContext(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, c)
}

// FromContext returns the claims stored by the authentication middleware.
// ok is false for unauthenticated requests.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey).(Claims)
	return c, ok
}
