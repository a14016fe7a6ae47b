package models

import "time"

// CourseSettingModel is one row of the course provisioning catalog.
type CourseSettingModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Item          string `gorm:"uniqueIndex:idx_course_item"`
	EnrollmentKey string
	CourseLink    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
