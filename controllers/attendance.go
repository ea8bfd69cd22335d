// controllers/attendance.go
package controllers

import (
	"net/http"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

func attendanceService() *services.AttendanceService {
	return services.NewAttendanceService(config.DB, config.Loc, config.GetLogger())
}

// GetMyAttendance returns the caller's record for the current local day.
func GetMyAttendance(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	rec, err := attendanceService().TodayRecord(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today":  utils.BeginningOfDay(config.Now()),
		"record": rec,
	})
}

type AttendanceNotesInput struct {
	Notes string `json:"notes"`
}

// CheckIn opens today's shift. Checking in twice is rejected.
func CheckIn(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input AttendanceNotesInput
	c.ShouldBindJSON(&input) // notes are optional

	svc := attendanceService()
	rec, err := svc.EnsureToday(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if rec.CheckIn != nil {
		utils.RespondWithError(c, http.StatusConflict, "You already checked in today")
		return
	}

	now := config.Now()
	rec.CheckIn = &now
	if input.Notes != "" {
		rec.Notes = input.Notes
	}

	if err := config.DB.Save(rec).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check in")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// CheckOut closes today's shift. Requires a prior check-in and rejects
// double check-outs.
func CheckOut(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input AttendanceNotesInput
	c.ShouldBindJSON(&input)

	svc := attendanceService()
	rec, err := svc.EnsureToday(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if rec.CheckIn == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "You have not checked in yet")
		return
	}
	if rec.CheckOut != nil {
		utils.RespondWithError(c, http.StatusConflict, "You already checked out today")
		return
	}

	now := config.Now()
	rec.CheckOut = &now
	if input.Notes != "" {
		rec.Notes = input.Notes
	}

	if err := config.DB.Save(rec).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check out")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetTodayAttendance lists today's records across all staff (admin).
func GetTodayAttendance(c *gin.Context) {
	today := utils.BeginningOfDay(config.Now())

	var records []models.Attendance
	if err := config.DB.Preload("User").
		Where("date = ?", today).
		Order("user_id asc").
		Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance")
		return
	}

	c.JSON(http.StatusOK, records)
}

// parseDateParam reads a YYYY-MM-DD query param in the shop timezone.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, config.Loc)
	if err != nil {
		return nil, false
	}
	return &t, true
}
