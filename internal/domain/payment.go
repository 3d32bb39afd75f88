package domain

import "time"

type Payment struct {
	ID          int32     `json:"id"`
	LeaseID     int32     `json:"lease_id"`
	AmountCents int32     `json:"amount_cents"`
	Method      string    `json:"method,omitempty"` // free-form tag, e.g. "Cash" or "Card"
	Reference   string    `json:"reference"`        // receipt token assigned on creation
	PaidOn      time.Time `json:"paid_on"`
}
