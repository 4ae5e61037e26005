package repository

import (
	"time"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	*Repository[models.Reservation]
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{Repository: New[models.Reservation](db)}
}

// ListPage is the paginated variant of List used by the reservations
// endpoint. It keeps the empty-result-is-not-found contract.
func (r *ReservationRepository) ListPage(businessID string, offset, limit int) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Where("business_id = ?", businessID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrNotFound
	}
	return reservations, nil
}

// CompletePastDue marks reservations whose end date has passed as COMPLETED.
// Only PENDING and CONFIRMED rows are touched so tenant-specific statuses
// survive the sweep. Runs across all tenants.
func (r *ReservationRepository) CompletePastDue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Reservation{}).
		Where("reservation_end_date < ? AND status IN ?", now,
			[]string{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		Update("status", models.ReservationStatusCompleted)
	return result.RowsAffected, result.Error
}
