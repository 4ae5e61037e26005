// services/reservation_sweeper.go
package services

import (
	"log"
	"time"

	"backoffice-backend/repository"

	"github.com/robfig/cron/v3"
)

// ReservationSweeper closes out reservations whose end date has passed.
type ReservationSweeper struct {
	reservations *repository.ReservationRepository
}

func NewReservationSweeper(reservations *repository.ReservationRepository) *ReservationSweeper {
	return &ReservationSweeper{reservations: reservations}
}

// StartScheduler runs Sweep on the given cron spec and returns the scheduler
// so callers can stop it.
func (s *ReservationSweeper) StartScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.Sweep); err != nil {
		return nil, err
	}
	c.Start()
	log.Println("Reservation sweeper started")
	return c, nil
}

// Sweep marks past-due PENDING/CONFIRMED reservations as COMPLETED.
func (s *ReservationSweeper) Sweep() {
	updated, err := s.reservations.CompletePastDue(time.Now().UTC())
	if err != nil {
		log.Printf("Reservation sweep failed: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("Reservation sweep completed %d reservation(s)", updated)
	}
}
