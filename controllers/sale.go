// controllers/sale.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSaleInput defines the expected JSON structure for a checkout.
// Quantities and cash arrive as strings, exactly as the register form
// submits them; the engine decides what survives.
type CreateSaleInput struct {
	Items         []services.SaleItemInput `json:"items" binding:"required"`
	PaymentType   string                   `json:"payment_type"`
	CashGiven     string                   `json:"cash_given"`
	DiscountID    *uint                    `json:"discount_id"`
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone"`
	CustomerEmail string                   `json:"customer_email"`
}

func saleService() *services.SaleService {
	return services.NewSaleService(config.DB, config.Loc, config.ShopName())
}

// CreateSale runs one checkout. A barber must be on shift (checked in
// today, not checked out); admins are exempt.
func CreateSale(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if role, _ := c.Get("role"); role == models.RoleKapster {
		onShift, reason, err := attendanceService().OnShift(userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if !onShift {
			utils.RespondWithError(c, http.StatusForbidden, reason)
			return
		}
	}

	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	trx, err := saleService().CreateSale(services.SaleInput{
		OperatorID:    userID,
		Items:         input.Items,
		PaymentType:   input.PaymentType,
		CashGiven:     input.CashGiven,
		DiscountID:    input.DiscountID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
	})
	if err != nil {
		if services.IsValidation(err) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			config.LogError(config.GetLogger(), "sales", "CreateSale", "persist sale", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create sale")
		}
		return
	}

	if err := config.DB.Preload("Items.Service").Preload("User").
		First(trx, trx.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, trx)
}

// GetSale returns one transaction for receipt rendering. Barbers may
// only read their own sales.
func GetSale(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var trx models.Transaction
	if err := config.DB.Preload("Items.Service").Preload("User").Preload("Customer").
		First(&trx, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, _ := c.Get("role")
	if role != models.RoleAdmin && trx.UserID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "Not your transaction")
		return
	}

	c.JSON(http.StatusOK, trx)
}

// GetMyTransactions lists the caller's sales, newest first, with the
// running total for today.
func GetMyTransactions(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := 20

	var txs []models.Transaction
	if err := config.DB.Preload("Items.Service").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	dayStart, dayEnd := utils.DayWindow(config.Now())
	var totalToday int64
	if err := config.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalToday).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txs,
		"page":         page,
		"per_page":     perPage,
		"total_today":  totalToday,
	})
}

// GetTransactions is the admin ledger with date/operator filters.
// Without a date filter it returns an empty result set rather than the
// full history.
func GetTransactions(c *gin.Context) {
	start, okStart := parseDateParam(c, "start_date")
	end, okEnd := parseDateParam(c, "end_date")
	if !okStart || !okEnd {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	if start == nil && end == nil {
		c.JSON(http.StatusOK, gin.H{
			"transactions": []models.Transaction{},
			"total_amount": 0,
			"total_count":  0,
		})
		return
	}

	query := config.DB.Model(&models.Transaction{})
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at < ?", end.AddDate(0, 0, 1))
	}
	if userID, err := strconv.Atoi(c.Query("user_id")); err == nil {
		query = query.Where("user_id = ?", userID)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := 20

	var totalAmount int64
	var totalCount int64
	if err := query.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := query.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalAmount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var txs []models.Transaction
	if err := query.Session(&gorm.Session{}).
		Preload("Items.Service").Preload("User").
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txs,
		"total_amount": totalAmount,
		"total_count":  totalCount,
		"page":         page,
		"per_page":     perPage,
	})
}

// UpdateTransactionInput is the admin correction surface: the customer
// snapshot and payment details. Line items and totals are immutable.
type UpdateTransactionInput struct {
	CustomerName *string `json:"customer_name"`
	PaymentType  *string `json:"payment_type" binding:"omitempty,oneof=cash non-cash"`
	CashGiven    *int    `json:"cash_given"`
}

// UpdateTransaction applies an admin correction, recomputing change
// when cash details move.
func UpdateTransaction(c *gin.Context) {
	var trx models.Transaction
	if err := config.DB.First(&trx, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerName != nil && *input.CustomerName != "" {
		trx.CustomerName = *input.CustomerName
	}
	if input.PaymentType != nil {
		trx.PaymentType = *input.PaymentType
	}

	if trx.PaymentType == models.PaymentCash {
		// A cash transaction must always carry a tendered amount that
		// covers the total, including one just switched over from
		// non-cash.
		cash := trx.CashGiven
		if input.CashGiven != nil {
			cash = input.CashGiven
		}
		if cash == nil || *cash < trx.Total {
			utils.RespondWithError(c, http.StatusBadRequest, "Cash given must cover the transaction total")
			return
		}
		change := *cash - trx.Total
		trx.CashGiven = cash
		trx.ChangeAmount = &change
	} else {
		trx.CashGiven = nil
		trx.ChangeAmount = nil
	}

	if err := config.DB.Save(&trx).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, trx)
}

// DeleteTransaction removes a transaction and its items in one unit.
func DeleteTransaction(c *gin.Context) {
	var trx models.Transaction
	if err := config.DB.First(&trx, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", trx.ID).
			Delete(&models.TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trx).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
