package model

import "time"

// Credential is one registered directory record. Email is the unique key and
// Password is stored exactly as entered.
type Credential struct {
	ID           string
	Email        string
	Password     string
	RegisteredAt time.Time
}

// Registration holds the fields a user submits on the register screen.
type Registration struct {
	Username string
	Email    string
	Password string
}
