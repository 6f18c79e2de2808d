// AngelaMos | 2026
// principal.go

package core

import (
	"fmt"
)

// Principal is the identity attached to a request by the session check.
// The zero value is an anonymous caller.
type Principal struct {
	UserID int64
}

func Anonymous() Principal {
	return Principal{}
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID > 0
}

// Require returns ErrUnauthorized for anonymous callers, tagged with op.
func (p Principal) Require(op string) error {
	if !p.IsAuthenticated() {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return nil
}

// Owns reports whether the principal is the owner with the given id.
func (p Principal) Owns(ownerID int64) bool {
	return p.IsAuthenticated() && p.UserID == ownerID
}
