// controllers/discount.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscountRuleInput struct {
	Name         string `json:"name" binding:"required"`
	DiscountType string `json:"discount_type" binding:"required,oneof=nominal percent"`
	Value        int    `json:"value" binding:"required,min=0"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	IsActive     *bool  `json:"is_active"`
}

func parseRuleDates(input DiscountRuleInput) (time.Time, time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02", input.StartDate, config.Loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", input.EndDate, config.Loc)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// CreateDiscount adds a promotional rule
func CreateDiscount(c *gin.Context) {
	var input DiscountRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start, end, ok := parseRuleDates(input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid validity window")
		return
	}

	rule := models.DiscountRule{
		Name:         input.Name,
		DiscountType: input.DiscountType,
		Value:        input.Value,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create discount")
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetDiscounts lists every rule, newest window first (admin view).
func GetDiscounts(c *gin.Context) {
	var rules []models.DiscountRule
	if err := config.DB.Order("start_date desc").Find(&rules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve discounts")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// GetActiveDiscounts lists the rules usable today, ordered by name.
// This is what the sale form offers.
func GetActiveDiscounts(c *gin.Context) {
	now := config.Now()

	var rules []models.DiscountRule
	if err := config.DB.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&rules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve discounts")
		return
	}

	applicable := make([]models.DiscountRule, 0, len(rules))
	for _, r := range rules {
		if r.AppliesOn(now) {
			applicable = append(applicable, r)
		}
	}

	c.JSON(http.StatusOK, applicable)
}

// UpdateDiscount replaces a rule's fields
func UpdateDiscount(c *gin.Context) {
	var rule models.DiscountRule
	if err := config.DB.First(&rule, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Discount not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input DiscountRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start, end, ok := parseRuleDates(input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid validity window")
		return
	}

	rule.Name = input.Name
	rule.DiscountType = input.DiscountType
	rule.Value = input.Value
	rule.StartDate = start
	rule.EndDate = end
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update discount")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteDiscount removes a rule. Past transactions keep their discount
// amount and name snapshot.
func DeleteDiscount(c *gin.Context) {
	result := config.DB.Delete(&models.DiscountRule{}, c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete discount")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Discount not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted successfully"})
}
