// Package auth checks the shared API key presented by clients on mutating routes.
package auth

import "errors"

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// ErrInvalidAPIKey is returned when the key is absent or does not match.
var ErrInvalidAPIKey = errors.New("Invalid or missing API key")

// Authenticate compares the supplied key with the configured secret.
// An empty key never authenticates, even against an empty secret.
func Authenticate(supplied, secret string) error {
	if supplied == "" || supplied != secret {
		return ErrInvalidAPIKey
	}
	return nil
}
