package models

type Product struct {
	TenantModel
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
