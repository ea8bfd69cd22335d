package models

import (
	"barberpos-backend/utils"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleKapster = "kapster"
)

// User is a staff member: the shop owner (admin) or a barber (kapster)
// who rings up sales.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'kapster'" json:"role"`
	IsActiveUser bool   `gorm:"default:true" json:"is_active_user"`

	Attendances  []Attendance  `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

// Hash the password before the row is first written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
