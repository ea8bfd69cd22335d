package services

import (
	"io"
	"testing"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newAttendanceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	if err := db.AutoMigrate(&models.User{}, &models.Attendance{}); err != nil {
		t.Fatalf("migrate attendance tables: %v", err)
	}
	return db
}

func newAttendanceEngine(t *testing.T) (*AttendanceService, *gorm.DB) {
	t.Helper()
	db := newAttendanceDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAttendanceService(db, time.UTC, log), db
}

func TestOnShiftLifecycle(t *testing.T) {
	svc, db := newAttendanceEngine(t)

	ok, reason, err := svc.OnShift(7)
	if err != nil {
		t.Fatalf("OnShift: %v", err)
	}
	if ok || reason != "You have not checked in today" {
		t.Errorf("no record: on=%v reason=%q", ok, reason)
	}

	rec, err := svc.EnsureToday(7)
	if err != nil {
		t.Fatalf("EnsureToday: %v", err)
	}

	// An empty record without a check-in still blocks sales.
	ok, _, _ = svc.OnShift(7)
	if ok {
		t.Error("on shift without check-in")
	}

	now := time.Now().UTC()
	if err := db.Model(rec).Update("check_in", now).Error; err != nil {
		t.Fatalf("check in: %v", err)
	}
	ok, reason, _ = svc.OnShift(7)
	if !ok || reason != "" {
		t.Errorf("after check-in: on=%v reason=%q", ok, reason)
	}

	if err := db.Model(rec).Update("check_out", now.Add(8*time.Hour)).Error; err != nil {
		t.Fatalf("check out: %v", err)
	}
	ok, reason, _ = svc.OnShift(7)
	if ok || reason != "You already checked out today" {
		t.Errorf("after check-out: on=%v reason=%q", ok, reason)
	}
}

func TestEnsureTodayIsIdempotent(t *testing.T) {
	svc, db := newAttendanceEngine(t)

	first, err := svc.EnsureToday(3)
	if err != nil {
		t.Fatalf("EnsureToday: %v", err)
	}
	second, err := svc.EnsureToday(3)
	if err != nil {
		t.Fatalf("EnsureToday again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("duplicate records: %d vs %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	if count != 1 {
		t.Errorf("attendance rows = %d, want 1", count)
	}
}

func TestCloseOpenRecords(t *testing.T) {
	svc, db := newAttendanceEngine(t)

	today := utils.BeginningOfDay(time.Now().UTC())
	checkIn := today.Add(9 * time.Hour)
	checkOut := today.Add(17 * time.Hour)

	open := models.Attendance{UserID: 1, Date: today, CheckIn: &checkIn}
	closed := models.Attendance{UserID: 2, Date: today, CheckIn: &checkIn, CheckOut: &checkOut}
	absent := models.Attendance{UserID: 3, Date: today}
	for _, rec := range []*models.Attendance{&open, &closed, &absent} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc.CloseOpenRecords()

	var reread models.Attendance
	if err := db.First(&reread, open.ID).Error; err != nil {
		t.Fatalf("re-read open: %v", err)
	}
	if reread.CheckOut == nil {
		t.Error("open record was not closed")
	}

	reread = models.Attendance{}
	if err := db.First(&reread, closed.ID).Error; err != nil {
		t.Fatalf("re-read closed: %v", err)
	}
	if !reread.CheckOut.Equal(checkOut) {
		t.Errorf("closed record rewritten: %v", reread.CheckOut)
	}

	reread = models.Attendance{}
	if err := db.First(&reread, absent.ID).Error; err != nil {
		t.Fatalf("re-read absent: %v", err)
	}
	if reread.CheckOut != nil {
		t.Error("record without check-in got a check-out")
	}
}
