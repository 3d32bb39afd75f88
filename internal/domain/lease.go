package domain

import "time"

type LeaseStatus string

const (
	LeaseStatusActive LeaseStatus = "ACTIVE"
	LeaseStatusClosed LeaseStatus = "CLOSED"
)

type Lease struct {
	ID         int32       `json:"id"`
	CustomerID int32       `json:"customer_id"`
	VehicleID  int32       `json:"vehicle_id"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	LeaseType  string      `json:"lease_type"`
	Status     LeaseStatus `json:"status"`
	// Daily rate snapshot captured from the vehicle at lease creation time.
	// Total cost calculations use this snapshot, not the live vehicle rate.
	DailyRateCents int32      `json:"daily_rate_cents"`
	CreatedOn      time.Time  `json:"created_on"`
	ClosedOn       *time.Time `json:"closed_on,omitempty"`
}

// IsOpen reports whether the lease has not been returned yet.
func (l *Lease) IsOpen() bool {
	return l.Status == LeaseStatusActive
}
