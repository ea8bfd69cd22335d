// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAttendanceReport returns barber attendance rows for the admin
// report screen, filtered by optional start/end dates and staff id.
// Only kapster accounts appear; admins have no shifts to report.
func GetAttendanceReport(c *gin.Context) {
	start, okStart := parseDateParam(c, "start")
	end, okEnd := parseDateParam(c, "end")
	if !okStart || !okEnd {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	query := config.DB.Preload("User").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("users.role = ?", models.RoleKapster)

	if start != nil {
		query = query.Where("attendances.date >= ?", *start)
	}
	if end != nil {
		query = query.Where("attendances.date <= ?", *end)
	}
	if userID, err := strconv.Atoi(c.Query("user_id")); err == nil {
		query = query.Where("attendances.user_id = ?", userID)
	}

	var rows []models.Attendance
	if err := query.Order("attendances.date desc, attendances.user_id asc").
		Find(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance report")
		return
	}

	// Filter dropdown: active barbers only
	var barbers []models.User
	if err := config.DB.
		Where("role = ? AND is_active_user = ?", models.RoleKapster, true).
		Order("name asc").
		Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	resp := gin.H{
		"rows":  rows,
		"users": barbers,
	}
	if start != nil && end != nil {
		// Inclusive length of the reported period, for the per-day
		// attendance rate shown above the table.
		resp["period_days"] = utils.DaysBetween(*start, *end) + 1
	}

	c.JSON(http.StatusOK, resp)
}
