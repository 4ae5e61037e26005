package models

// Ledger entry types.
const (
	FinanceTypeIncome  = "INCOME"
	FinanceTypeExpense = "EXPENSE"
)

// FinanceRecord is a single cash-flow ledger entry. ReservationID is a weak
// reference: lookup only, no ownership, but it must name a reservation of the
// same tenant when set.
type FinanceRecord struct {
	TenantModel
	Concept       string  `gorm:"not null" json:"concept"`
	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type          string  `gorm:"type:varchar(10);not null" json:"type"`
	Creator       string  `gorm:"not null" json:"creator"`
	ReservationID *uint   `gorm:"index" json:"reservation_id"`
}
