package models

import "time"

// TenantModel is the embedded base for every tenant-owned record. BusinessID
// comes from the authenticated token's subject claim, is stamped server-side
// on create and never serialized back to clients.
type TenantModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID string    `gorm:"index;not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// SetBusinessID assigns the tenant key. Only the repository calls this.
func (m *TenantModel) SetBusinessID(id string) {
	m.BusinessID = id
}
