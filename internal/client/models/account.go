package models

import "time"

// Account is an entry of the local account directory: a user plus the
// argon2 password verifier used to sign them in.
type Account struct {
	User      *User
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

type LeaderboardEntry struct {
	Rank        int
	UserID      string
	Name        string
	KarmaPoints int
	Current     bool
}

// Attachment is an encrypted file supplied during onboarding.
type Attachment struct {
	ID         string
	UserID     string
	Name       string
	Ciphertext []byte
	Nonce      []byte
	CreatedAt  time.Time
}
