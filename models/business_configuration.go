package models

// BusinessConfiguration holds the owner-editable settings of a business.
// A tenant may keep more than one configuration row.
type BusinessConfiguration struct {
	TenantModel
	BusinessName string `gorm:"not null" json:"business_name"`
	Staff        string `json:"staff"`
}
