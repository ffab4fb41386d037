package model

import "time"

// License is a grant of product usage rights tied to an owner and type.
// This is a pure domain model with no database-specific dependencies or tags.
type License struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	OwnerID       int64     `json:"owner_id"`
	LicenseTypeID int64     `json:"license_type_id"`
	DeviceCount   int       `json:"device_count"`
	DurationDays  int64     `json:"duration"`
	CreatedAt     time.Time `json:"created_at"`
}
