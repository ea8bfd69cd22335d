// services/sale_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"gorm.io/gorm"
)

// A concurrent sale can compute the same next invoice sequence before
// either commits; the unique (invoice_day, invoice_seq) index rejects
// the loser and the engine re-derives the sequence.
const maxSequenceRetries = 3

// SaleService turns a submitted cart into a persisted, uniquely numbered
// transaction. Prices are always re-read from the catalog, never taken
// from the client.
type SaleService struct {
	db       *gorm.DB
	loc      *time.Location
	shopName string
	nowFn    func() time.Time
}

func NewSaleService(db *gorm.DB, loc *time.Location, shopName string) *SaleService {
	s := &SaleService{db: db, loc: loc, shopName: shopName}
	s.nowFn = func() time.Time { return time.Now().In(s.loc) }
	return s
}

// SaleItemInput is one cart line as submitted: quantities arrive as
// strings from the form layer and are parsed (and possibly dropped) here.
type SaleItemInput struct {
	ServiceID uint   `json:"service_id"`
	Qty       string `json:"qty"`
}

// SaleInput carries everything a checkout needs, including the operator
// identity as an explicit parameter.
type SaleInput struct {
	OperatorID    uint
	Items         []SaleItemInput
	PaymentType   string
	CashGiven     string
	DiscountID    *uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

type pricedLine struct {
	service   models.Service
	qty       int
	lineTotal int
}

// CreateSale validates, prices and persists one sale as a single atomic
// unit. It returns the fully populated transaction, a ValidationError
// for user-correctable input, or a PersistenceError for storage failures.
func (s *SaleService) CreateSale(in SaleInput) (*models.Transaction, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, &ValidationError{Message: "customer name required"}
	}

	email := strings.TrimSpace(in.CustomerEmail)
	if email != "" && !utils.ValidateEmail(email) {
		return nil, &ValidationError{Message: "invalid email"}
	}

	for attempt := 0; attempt < maxSequenceRetries; attempt++ {
		trx, err := s.attemptSale(in, name, email)
		if err == nil {
			return trx, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost an invoice-sequence (or first-visit customer) race;
			// rerun against fresh state.
			continue
		}
		if IsValidation(err) {
			return nil, err
		}
		return nil, &PersistenceError{Err: err}
	}
	return nil, &PersistenceError{Err: fmt.Errorf("invoice sequence conflict persisted after %d attempts", maxSequenceRetries)}
}

func (s *SaleService) attemptSale(in SaleInput, name, email string) (*models.Transaction, error) {
	now := s.nowFn()
	var trx models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		lines, subtotal, err := s.priceLines(tx, in.Items)
		if err != nil {
			return err
		}
		if len(lines) == 0 || subtotal == 0 {
			return &ValidationError{Message: "no valid service lines"}
		}

		discount, discountName, err := s.resolveDiscount(tx, in.DiscountID, subtotal, now)
		if err != nil {
			return err
		}
		total := subtotal - discount

		payType, cashGiven, changeAmount, err := validatePayment(in.PaymentType, in.CashGiven, total)
		if err != nil {
			return err
		}

		customer, visitNumber, err := s.resolveCustomer(tx, name, in.CustomerPhone, now)
		if err != nil {
			return err
		}

		dayStart, seq, code, err := s.nextInvoice(tx, now)
		if err != nil {
			return err
		}

		items := make([]models.TransactionItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, models.TransactionItem{
				ServiceID: l.service.ID,
				Qty:       l.qty,
				PriceEach: l.service.Price,
				LineTotal: l.lineTotal,
			})
		}

		trx = models.Transaction{
			UserID:        in.OperatorID,
			BarberName:    s.shopName,
			CustomerID:    &customer.ID,
			CustomerName:  name,
			CustomerPhone: customer.Phone,
			PaymentType:   payType,
			Total:         total,
			Discount:      discount,
			DiscountName:  discountName,
			CashGiven:     cashGiven,
			ChangeAmount:  changeAmount,
			VisitNumber:   visitNumber,
			InvoiceDay:    dayStart,
			InvoiceSeq:    seq,
			InvoiceCode:   code,
			CreatedAt:     now,
			Items:         items,
		}
		if email != "" {
			trx.CustomerEmail = &email
		}

		return tx.Create(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// priceLines re-prices the cart against the active catalog. Lines with
// non-positive or unparseable quantities, and lines referencing missing
// or inactive services, are dropped rather than failing the sale.
func (s *SaleService) priceLines(tx *gorm.DB, items []SaleItemInput) ([]pricedLine, int, error) {
	var lines []pricedLine
	subtotal := 0

	for _, item := range items {
		qty, err := strconv.Atoi(strings.TrimSpace(item.Qty))
		if err != nil || qty <= 0 {
			continue
		}

		var svc models.Service
		if err := tx.Where("id = ? AND is_active = ?", item.ServiceID, true).
			First(&svc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, 0, err
		}

		lineTotal := svc.Price * qty
		subtotal += lineTotal
		lines = append(lines, pricedLine{service: svc, qty: qty, lineTotal: lineTotal})
	}

	return lines, subtotal, nil
}

// resolveDiscount computes the clamped discount for the selected rule.
// A rule that is missing, inactive or outside its validity window is
// ignored, mirroring how stale cart lines are handled.
func (s *SaleService) resolveDiscount(tx *gorm.DB, ruleID *uint, subtotal int, now time.Time) (int, *string, error) {
	if ruleID == nil {
		return 0, nil, nil
	}

	var rule models.DiscountRule
	if err := tx.First(&rule, *ruleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, nil
		}
		return 0, nil, err
	}
	if !rule.AppliesOn(now) {
		return 0, nil, nil
	}

	discount := 0
	switch rule.DiscountType {
	case models.DiscountPercent:
		discount = subtotal * rule.Value / 100
	case models.DiscountNominal:
		discount = rule.Value
	}

	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	return discount, &rule.Name, nil
}

// validatePayment normalizes the payment type and, for cash, parses the
// tendered amount and computes change. Non-cash sales carry no cash
// fields and enforce no minimum.
func validatePayment(payType, cashGiven string, total int) (string, *int, *int, error) {
	pt := strings.ToLower(strings.TrimSpace(payType))
	if pt == "" {
		pt = models.PaymentCash
	}
	if pt != models.PaymentCash {
		return models.PaymentNonCash, nil, nil, nil
	}

	cash, err := strconv.Atoi(strings.TrimSpace(cashGiven))
	if err != nil {
		cash = 0
	}
	if cash <= 0 || cash < total {
		return "", nil, nil, &ValidationError{Message: "insufficient payment"}
	}

	change := cash - total
	return models.PaymentCash, &cash, &change, nil
}

// resolveCustomer finds or creates the customer and derives their visit
// number. Phone is the dedup key; a sale without a phone always creates
// a fresh customer record rather than guessing among duplicate names.
func (s *SaleService) resolveCustomer(tx *gorm.DB, name, phone string, now time.Time) (*models.Customer, int, error) {
	phone = strings.TrimSpace(phone)

	var customer models.Customer
	if phone != "" {
		err := tx.Where("phone = ?", phone).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = models.Customer{Name: name, Phone: &phone}
			// The unique phone index is the real guard against two
			// first visits racing; a duplicate-key error here bubbles
			// up into the retry loop.
			if err := tx.Create(&customer).Error; err != nil {
				return nil, 0, err
			}
		} else if err != nil {
			return nil, 0, err
		}
	} else {
		customer = models.Customer{Name: name}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, 0, err
		}
	}

	var priorVisits int64
	if err := tx.Model(&models.Transaction{}).
		Where("customer_id = ?", customer.ID).
		Count(&priorVisits).Error; err != nil {
		return nil, 0, err
	}

	if err := tx.Model(&customer).Update("updated_at", now).Error; err != nil {
		return nil, 0, err
	}

	return &customer, int(priorVisits) + 1, nil
}

// nextInvoice derives the next per-day sequence number and the printable
// code. The read-max-then-insert pattern is racy on its own; the unique
// (invoice_day, invoice_seq) index makes the collision detectable.
func (s *SaleService) nextInvoice(tx *gorm.DB, now time.Time) (time.Time, int, string, error) {
	dayStart, dayEnd := utils.DayWindow(now)

	var maxSeq int
	if err := tx.Model(&models.Transaction{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Select("COALESCE(MAX(invoice_seq), 0)").
		Scan(&maxSeq).Error; err != nil {
		return time.Time{}, 0, "", err
	}

	seq := maxSeq + 1
	code := fmt.Sprintf("INV-%s-%03d", now.Format("02/01/2006"), seq)
	return dayStart, seq, code, nil
}
