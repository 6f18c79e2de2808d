// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID               int64     `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	SubscriptionTier string    `db:"subscription_tier"`
	CreatedAt        time.Time `db:"created_at"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

const (
	TierBasic        = "basic"
	TierPremium      = "premium"
	TierProfessional = "professional"
)
