package model

import "time"

// LicenseHistory is an audit record of a license's status change at a point
// in time. ChangeDate carries date precision only (yyyy-MM-dd on the wire).
type LicenseHistory struct {
	ID          int64     `json:"id"`
	LicenseID   int64     `json:"license_id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	ChangeDate  time.Time `json:"change_date"`
}
