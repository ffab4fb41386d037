package model

import "time"

// Device is a named, MAC-identified endpoint registered to a user.
// Device identity is the (Name, MACAddress, UserID) triple; the database
// enforces its uniqueness.
type Device struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	MACAddress string    `json:"mac_address"`
	UserID     int64     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
