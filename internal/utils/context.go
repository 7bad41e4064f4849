// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientCtxKey is the key used to store the authenticated API caller's
// identity in the context. Used together with GetClientFromContext for
// type-safe retrieval from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientCtxKey, "release-bot")
var ClientCtxKey = contextKey("client")

// GetClientFromContext retrieves the authenticated caller identity from the
// context.
//
// Returns the caller name and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	client, ok := utils.GetClientFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientCtxKey).(string)
	return client, ok
}
