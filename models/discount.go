package models

import "time"

const (
	DiscountNominal = "nominal"
	DiscountPercent = "percent"
)

// DiscountRule is a time-windowed promotion. The window is inclusive on
// both ends and evaluated against the shop's local calendar date.
type DiscountRule struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	DiscountType string    `gorm:"type:varchar(20);not null" json:"discount_type"`
	Value        int       `gorm:"not null" json:"value"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AppliesOn reports whether the rule is usable for a sale on the given
// local date. Window bounds and the sale day are compared as calendar
// dates, so timezone offsets cannot shift a rule at its boundaries.
func (r *DiscountRule) AppliesOn(day time.Time) bool {
	if !r.IsActive {
		return false
	}
	d := day.Format("2006-01-02")
	return d >= r.StartDate.Format("2006-01-02") && d <= r.EndDate.Format("2006-01-02")
}
