package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"barberpos-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, payType string, total int, cash, change *int) models.Transaction {
	t.Helper()

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	trx := models.Transaction{
		UserID:       1,
		CustomerName: "Budi",
		PaymentType:  payType,
		Total:        total,
		CashGiven:    cash,
		ChangeAmount: change,
		VisitNumber:  1,
		InvoiceDay:   day,
		InvoiceSeq:   1,
		InvoiceCode:  "INV-31/08/2026-001",
	}
	if err := db.Create(&trx).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	return trx
}

func TestUpdateTransactionSwitchToCashRequiresTender(t *testing.T) {
	db := setupHandlerTest(t)
	trx := seedTransaction(t, db, models.PaymentNonCash, 50000, nil, nil)

	w, c := jsonRequest(t, "PUT", "/api/transactions/1", gin.H{"payment_type": "cash"})
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(trx.ID)}}
	UpdateTransaction(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var reread models.Transaction
	if err := db.First(&reread, trx.ID).Error; err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if reread.PaymentType != models.PaymentNonCash || reread.CashGiven != nil {
		t.Errorf("rejected edit persisted: type=%s cash=%v", reread.PaymentType, reread.CashGiven)
	}
}

func TestUpdateTransactionSwitchToCashWithTender(t *testing.T) {
	db := setupHandlerTest(t)
	trx := seedTransaction(t, db, models.PaymentNonCash, 50000, nil, nil)

	w, c := jsonRequest(t, "PUT", "/api/transactions/1", gin.H{
		"payment_type": "cash",
		"cash_given":   60000,
	})
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(trx.ID)}}
	UpdateTransaction(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var reread models.Transaction
	if err := db.First(&reread, trx.ID).Error; err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if reread.PaymentType != models.PaymentCash {
		t.Errorf("payment_type = %q, want cash", reread.PaymentType)
	}
	if reread.CashGiven == nil || *reread.CashGiven != 60000 {
		t.Errorf("cash_given = %v, want 60000", reread.CashGiven)
	}
	if reread.ChangeAmount == nil || *reread.ChangeAmount != 10000 {
		t.Errorf("change = %v, want 10000", reread.ChangeAmount)
	}
}

func TestUpdateTransactionRejectsShortCash(t *testing.T) {
	db := setupHandlerTest(t)
	cash, change := 50000, 0
	trx := seedTransaction(t, db, models.PaymentCash, 50000, &cash, &change)

	w, c := jsonRequest(t, "PUT", "/api/transactions/1", gin.H{"cash_given": 40000})
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(trx.ID)}}
	UpdateTransaction(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var reread models.Transaction
	if err := db.First(&reread, trx.ID).Error; err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if reread.CashGiven == nil || *reread.CashGiven != 50000 {
		t.Errorf("cash_given = %v, want untouched 50000", reread.CashGiven)
	}
}

func TestUpdateTransactionSwitchToNonCashClearsCashFields(t *testing.T) {
	db := setupHandlerTest(t)
	cash, change := 60000, 10000
	trx := seedTransaction(t, db, models.PaymentCash, 50000, &cash, &change)

	w, c := jsonRequest(t, "PUT", "/api/transactions/1", gin.H{"payment_type": "non-cash"})
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(trx.ID)}}
	UpdateTransaction(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var reread models.Transaction
	if err := db.First(&reread, trx.ID).Error; err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if reread.CashGiven != nil || reread.ChangeAmount != nil {
		t.Errorf("cash fields survived the switch: %v / %v", reread.CashGiven, reread.ChangeAmount)
	}
}
