package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusRented    VehicleStatus = "RENTED"
)

type Vehicle struct {
	ID                int32         `json:"id"`
	Make              string        `json:"make"`
	Model             string        `json:"model"`
	Year              int32         `json:"year"`
	DailyRateCents    int32         `json:"daily_rate_cents"`
	Status            VehicleStatus `json:"status"`
	PassengerCapacity int32         `json:"passenger_capacity"`
	EngineSpec        string        `json:"engine_spec"`
	CreatedOn         time.Time     `json:"created_on"`
}
