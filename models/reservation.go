package models

import "time"

// Reservation statuses the daily sweep understands. Status itself is free
// text, so tenants can use their own vocabulary.
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCompleted = "COMPLETED"
)

type Reservation struct {
	TenantModel
	CustomerName         string    `gorm:"not null" json:"customer_name"`
	InCharge             *string   `json:"in_charge"`
	ReservationStartDate time.Time `gorm:"not null" json:"reservation_start_date"`
	ReservationEndDate   time.Time `gorm:"not null" json:"reservation_end_date"`
	TimePerReservation   int       `gorm:"not null" json:"time_per_reservation"` // in minutes
	Status               string    `gorm:"not null" json:"status"`
	Service              string    `gorm:"not null" json:"service"`
}
