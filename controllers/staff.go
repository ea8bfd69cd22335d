// controllers/staff.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateStaffInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin kapster"`
}

type UpdateStaffInput struct {
	Name         *string `json:"name"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Role         *string `json:"role" binding:"omitempty,oneof=admin kapster"`
	IsActiveUser *bool   `json:"is_active_user"`
}

// GetStaff lists all staff, admins first.
func GetStaff(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("role desc, name asc").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, users)
}

// AddStaff registers a new staff member.
func AddStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && !utils.ValidateEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email")
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleKapster
	}

	user := models.User{
		Name:         strings.TrimSpace(input.Name),
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		Password:     input.Password, // hashed in BeforeCreate hook
		Role:         role,
		IsActiveUser: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Username already taken")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateStaff edits a staff member; password changes are re-hashed.
func UpdateStaff(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != "" && !utils.ValidateEmail(email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email")
			return
		}
		user.Email = email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActiveUser != nil {
		user.IsActiveUser = *input.IsActiveUser
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Username already taken")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteStaff removes a staff member. Admins and anyone with attendance
// history stay.
func DeleteStaff(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if user.Role == models.RoleAdmin {
		utils.RespondWithError(c, http.StatusConflict, "Admin accounts cannot be deleted")
		return
	}

	var attendanceCount int64
	if err := config.DB.Model(&models.Attendance{}).
		Where("user_id = ?", user.ID).
		Count(&attendanceCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if attendanceCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Staff has attendance history")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
