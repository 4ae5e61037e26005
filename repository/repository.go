// Package repository implements tenant-scoped persistence. Every query is
// constrained to a single business_id; a record owned by another tenant is
// indistinguishable from one that does not exist.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both "no such record" and "record belongs to another
// tenant". Controllers map it to 404.
var ErrNotFound = errors.New("record not found")

// TenantRecord is implemented by every model embedding models.TenantModel.
type TenantRecord interface {
	SetBusinessID(id string)
}

// Repository is the tenant-scoped CRUD pattern, instantiated per record type.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// List returns the tenant's records in insertion order. An empty result is
// reported as ErrNotFound, matching the API contract.
func (r *Repository[T]) List(businessID string) ([]T, error) {
	var records []T
	if err := r.db.Where("business_id = ?", businessID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

func (r *Repository[T]) GetByID(businessID string, id uint) (*T, error) {
	var record T
	err := r.db.Where("business_id = ? AND id = ?", businessID, id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create stamps the record with the caller's tenant id and persists it.
// Whatever business_id the record carried before is overwritten.
func (r *Repository[T]) Create(businessID string, record *T) error {
	any(record).(TenantRecord).SetBusinessID(businessID)
	return r.db.Create(record).Error
}

// Save persists a record previously loaded through GetByID. Last write wins;
// there is no version check.
func (r *Repository[T]) Save(record *T) error {
	return r.db.Save(record).Error
}

func (r *Repository[T]) Delete(businessID string, id uint) error {
	result := r.db.Where("business_id = ? AND id = ?", businessID, id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
