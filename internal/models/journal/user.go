package journal

import "time"

// User is an authenticated account. Authentication here is a stub over
// Redis-backed records; there is no external identity provider.
type User struct {
	UID          string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
