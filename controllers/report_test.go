package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"barberpos-backend/models"
)

func TestAttendanceReportPeriodDays(t *testing.T) {
	db := setupHandlerTest(t)

	barber := models.User{
		Name:         "Andi",
		Username:     "andi",
		Password:     "rahasia123",
		Role:         models.RoleKapster,
		IsActiveUser: true,
	}
	if err := db.Create(&barber).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}

	inside := models.Attendance{UserID: barber.ID, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)}
	outside := models.Attendance{UserID: barber.ID, Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)}
	for _, rec := range []*models.Attendance{&inside, &outside} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	w, c := jsonRequest(t, "GET", "/api/reports/attendance?start=2026-08-18&end=2026-08-24", nil)
	GetAttendanceReport(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Rows       []models.Attendance `json:"rows"`
		PeriodDays int                 `json:"period_days"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.PeriodDays != 7 {
		t.Errorf("period_days = %d, want 7", resp.PeriodDays)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].ID != inside.ID {
		t.Errorf("rows = %+v, want only the in-window record", resp.Rows)
	}
}
