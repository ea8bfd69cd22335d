package models

import "time"

const (
	PaymentCash    = "cash"
	PaymentNonCash = "non-cash"
)

// Transaction is one completed checkout. Totals, the customer snapshot,
// the invoice code and the visit number are all fixed at creation time
// and never recomputed.
type Transaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `json:"user,omitempty"`

	// Shop name snapshot printed on the receipt.
	BarberName string `json:"barber_name"`

	CustomerID    *uint     `gorm:"index" json:"customer_id"`
	Customer      *Customer `json:"customer,omitempty"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerPhone *string   `json:"customer_phone"`
	CustomerEmail *string   `json:"customer_email"`

	PaymentType  string  `gorm:"type:varchar(20);not null" json:"payment_type"`
	Total        int     `gorm:"not null" json:"total"`
	Discount     int     `gorm:"not null;default:0" json:"discount"`
	DiscountName *string `json:"discount_name"`
	CashGiven    *int    `json:"cash_given"`
	ChangeAmount *int    `json:"change_amount"`

	// Ordinal visit of the customer at the moment of sale.
	VisitNumber int `gorm:"not null;default:1" json:"visit_number"`

	// The (day, seq) pair is unique; concurrent sales computing the same
	// next sequence collide here and the engine retries.
	InvoiceDay  time.Time `gorm:"not null;uniqueIndex:idx_invoice_day_seq,priority:1" json:"invoice_day"`
	InvoiceSeq  int       `gorm:"not null;uniqueIndex:idx_invoice_day_seq,priority:2" json:"invoice_seq"`
	InvoiceCode string    `gorm:"not null" json:"invoice_code"`

	CreatedAt time.Time `json:"created_at"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items"`
}

// TransactionItem is one priced cart line. PriceEach is a snapshot of
// the service price at sale time.
type TransactionItem struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	TransactionID uint `gorm:"index;not null" json:"transaction_id"`
	ServiceID     uint `gorm:"index;not null" json:"service_id"`

	Qty       int `gorm:"not null" json:"qty"`
	PriceEach int `gorm:"not null" json:"price_each"`
	LineTotal int `gorm:"not null" json:"line_total"`

	Service Service `json:"service,omitempty"`
}
