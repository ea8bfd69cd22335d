package models

import "time"

// Attendance is one staff member's record for one calendar day.
// A day without a check-in is a day the barber cannot ring up sales.
type Attendance struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	UserID   uint       `gorm:"not null;uniqueIndex:idx_attendance_user_date,priority:1" json:"user_id"`
	Date     time.Time  `gorm:"not null;index;uniqueIndex:idx_attendance_user_date,priority:2" json:"date"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Notes    string     `gorm:"size:255" json:"notes"`

	User User `json:"user,omitempty"`
}
