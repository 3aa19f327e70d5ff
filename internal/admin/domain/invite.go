package domain

import "time"

// Invite is a single-use admin invitation. The raw token is only ever held by
// the recipient; we store its SHA-256 fingerprint.
type Invite struct {
	ID        string
	Email     string // lowercased, trimmed
	TokenHash string // unique
	ExpiresAt time.Time
	Accepted  bool // terminal flag; once true the record is inert
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actionable reports whether the invite can still be verified or accepted:
// unaccepted and unexpired.
func (i Invite) Actionable(now time.Time) bool {
	return !i.Accepted && now.Before(i.ExpiresAt)
}
