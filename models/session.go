package models

import (
	"math"
	"time"
)

const DefaultServiceType = "General Service"

type ServiceSession struct {
	ID                      int64      `json:"id"`
	UserID                  string     `json:"userId"`
	ClockInTime             time.Time  `json:"clockInTime"`
	ClockOutTime            *time.Time `json:"clockOutTime"`
	ServiceType             string     `json:"serviceType"`
	Duration                *int       `json:"duration"` // minutes
	IsActive                bool       `json:"isActive"`
	ClockInLatitude         *float64   `json:"clockInLatitude"`
	ClockInLongitude        *float64   `json:"clockInLongitude"`
	ClockInLocationVerified *bool      `json:"clockInLocationVerified"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

// DurationMinutes is the whole number of minutes between clock-in and
// clock-out, rounded to nearest.
func DurationMinutes(clockIn, clockOut time.Time) int {
	return int(math.Round(clockOut.Sub(clockIn).Minutes()))
}

// SessionExportRow is a session joined with its owner for CSV export.
type SessionExportRow struct {
	Session   ServiceSession
	UserName  string
	UserEmail string
}
