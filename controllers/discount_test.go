package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"barberpos-backend/models"
)

func TestGetActiveDiscountsFiltersWindow(t *testing.T) {
	db := setupHandlerTest(t)
	now := time.Now().UTC()

	rules := []models.DiscountRule{
		{Name: "Current", DiscountType: models.DiscountPercent, Value: 10,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 1), IsActive: true},
		{Name: "Expired", DiscountType: models.DiscountPercent, Value: 10,
			StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 0, -2), IsActive: true},
		{Name: "Disabled", DiscountType: models.DiscountNominal, Value: 5000,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 1), IsActive: false},
	}
	for i := range rules {
		if err := db.Create(&rules[i]).Error; err != nil {
			t.Fatalf("seed rule %s: %v", rules[i].Name, err)
		}
	}

	w, c := jsonRequest(t, "GET", "/api/discounts/active", nil)
	GetActiveDiscounts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var got []models.DiscountRule
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Current" {
		t.Errorf("active rules = %+v, want only Current", got)
	}
}
