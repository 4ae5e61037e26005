package repository

import (
	"time"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

// MonthlyBalance is one entry of the annual finances report.
type MonthlyBalance struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

type FinanceRepository struct {
	*Repository[models.FinanceRecord]
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{Repository: New[models.FinanceRecord](db)}
}

// MonthlyBalances sums the tenant's ledger per calendar month of the given
// year: income minus expenses. It always returns exactly 12 entries in month
// order, with a zero balance for months without records.
func (r *FinanceRepository) MonthlyBalances(businessID string, year int) ([]MonthlyBalance, error) {
	balances := make([]MonthlyBalance, 0, 12)
	for month := time.January; month <= time.December; month++ {
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		// AddDate rolls over to the next month's first day minus one,
		// which handles 28/29/30/31-day months and leap years.
		lastDay := start.AddDate(0, 1, -1)
		end := time.Date(year, month, lastDay.Day(), 23, 59, 59, 0, time.UTC)

		var records []models.FinanceRecord
		err := r.db.
			Where("business_id = ? AND created_at BETWEEN ? AND ?", businessID, start, end).
			Find(&records).Error
		if err != nil {
			return nil, err
		}

		var balance float64
		for _, record := range records {
			switch record.Type {
			case models.FinanceTypeIncome:
				balance += record.Amount
			case models.FinanceTypeExpense:
				balance -= record.Amount
			}
		}
		balances = append(balances, MonthlyBalance{Month: int(month), Balance: balance})
	}
	return balances, nil
}
