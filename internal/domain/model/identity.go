package model

// GuestName is the display name shown for sessions entered without credentials.
const GuestName = "Guest"

// Identity is the display identity handed back to a caller after a
// successful registration, login, or guest entry.
type Identity struct {
	Name  string
	Guest bool
}

// GuestIdentity returns the fixed identity for guest sessions.
func GuestIdentity() Identity {
	return Identity{Name: GuestName, Guest: true}
}

// IsZero reports whether no identity is set.
func (i Identity) IsZero() bool {
	return i.Name == "" && !i.Guest
}
