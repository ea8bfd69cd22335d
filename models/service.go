package models

// Service is a priced catalog entry. Price is in the smallest currency
// unit. Transaction items copy the price at sale time, so editing it
// never rewrites history.
type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Price    int    `gorm:"not null" json:"price"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	TransactionItems []TransactionItem `gorm:"foreignKey:ServiceID" json:"-"`
}
