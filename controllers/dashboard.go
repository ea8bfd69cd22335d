// controllers/dashboard.go
package controllers

import (
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalBarbers    int64               `json:"totalBarbers"`
	CheckedInToday  int64               `json:"checkedInToday"`
	MissingToday    int64               `json:"missingToday"`
	RevenueToday    int64               `json:"revenueToday"`
	SalesToday      int64               `json:"salesToday"`
	RecentLog       []models.Attendance `json:"recentLog"`
}

// GetDashboardOverview summarizes today's shop state for the admin.
func GetDashboardOverview(c *gin.Context) {
	now := config.Now()
	today := utils.BeginningOfDay(now)
	twoWeeksAgo := today.AddDate(0, 0, -14)

	var totalBarbers int64
	config.DB.Model(&models.User{}).
		Where("role = ? AND is_active_user = ?", models.RoleKapster, true).
		Count(&totalBarbers)

	var checkedIn int64
	config.DB.Model(&models.Attendance{}).
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.date = ? AND attendances.check_in IS NOT NULL", today).
		Where("users.role = ? AND users.is_active_user = ?", models.RoleKapster, true).
		Count(&checkedIn)

	missing := totalBarbers - checkedIn
	if missing < 0 {
		missing = 0
	}

	dayStart, dayEnd := utils.DayWindow(now)
	var revenueToday int64
	config.DB.Model(&models.Transaction{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenueToday)

	var salesToday int64
	config.DB.Model(&models.Transaction{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&salesToday)

	var recent []models.Attendance
	if err := config.DB.Preload("User").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("users.role = ? AND attendances.date >= ?", models.RoleKapster, twoWeeksAgo).
		Order("attendances.date desc, attendances.id desc").
		Limit(50).
		Find(&recent).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dashboard")
		return
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalBarbers:   totalBarbers,
		CheckedInToday: checkedIn,
		MissingToday:   missing,
		RevenueToday:   revenueToday,
		SalesToday:     salesToday,
		RecentLog:      recent,
	})
}
