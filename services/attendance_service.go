// services/attendance_service.go
package services

import (
	"errors"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AttendanceService owns the daily check-in/check-out records and the
// end-of-day cleanup job.
type AttendanceService struct {
	db  *gorm.DB
	loc *time.Location
	log *logrus.Logger
}

func NewAttendanceService(db *gorm.DB, loc *time.Location, log *logrus.Logger) *AttendanceService {
	return &AttendanceService{db: db, loc: loc, log: log}
}

func (s *AttendanceService) today() time.Time {
	return utils.BeginningOfDay(time.Now().In(s.loc))
}

// TodayRecord returns the staff member's attendance row for the current
// local day, or nil if none exists yet.
func (s *AttendanceService) TodayRecord(userID uint) (*models.Attendance, error) {
	var rec models.Attendance
	err := s.db.Where("user_id = ? AND date = ?", userID, s.today()).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// EnsureToday returns today's record, creating an empty one if needed.
func (s *AttendanceService) EnsureToday(userID uint) (*models.Attendance, error) {
	rec, err := s.TodayRecord(userID)
	if err != nil || rec != nil {
		return rec, err
	}
	rec = &models.Attendance{UserID: userID, Date: s.today()}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// OnShift reports whether a barber may ring up sales right now: checked
// in today and not yet checked out. The reason is empty when on shift.
func (s *AttendanceService) OnShift(userID uint) (bool, string, error) {
	rec, err := s.TodayRecord(userID)
	if err != nil {
		return false, "", err
	}
	if rec == nil || rec.CheckIn == nil {
		return false, "You have not checked in today", nil
	}
	if rec.CheckOut != nil {
		return false, "You already checked out today", nil
	}
	return true, "", nil
}

// StartScheduler closes attendance records left open at the end of each
// local day.
func (s *AttendanceService) StartScheduler() {
	c := cron.New(cron.WithLocation(s.loc))

	c.AddFunc("59 23 * * *", s.CloseOpenRecords)

	c.Start()
	s.log.Info("Attendance scheduler started")
}

// CloseOpenRecords stamps a check-out on today's records that have a
// check-in but were never closed.
func (s *AttendanceService) CloseOpenRecords() {
	now := time.Now().In(s.loc)

	result := s.db.Model(&models.Attendance{}).
		Where("date = ? AND check_in IS NOT NULL AND check_out IS NULL", s.today()).
		Update("check_out", now)
	if result.Error != nil {
		s.log.WithField("module", "attendance").Error("Failed to close open attendance: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		s.log.WithFields(logrus.Fields{
			"module": "attendance",
			"closed": result.RowsAffected,
		}).Info("Closed open attendance records")
	}
}
