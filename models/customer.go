package models

import "time"

// Customer is created on the first sale that references a new phone
// number (or a name with no phone) and touched on every later visit.
// The unique phone index is what keeps two concurrent first visits
// from creating duplicates.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     *string   `gorm:"uniqueIndex" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`
}
