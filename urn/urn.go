// Package urn generates the URNs used as atom:id values.
package urn

import "github.com/google/uuid"

// UUID returns a fresh random urn:uuid URN (RFC 4122).
func UUID() string {
	return "urn:uuid:" + uuid.NewString()
}
