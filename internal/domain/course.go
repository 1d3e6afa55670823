package domain

import "time"

// Course is a catalog row recorded when an external course is imported.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:180;not null" json:"title"`
	Slug        string    `gorm:"size:140;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	TeacherName string    `gorm:"size:140" json:"teacher_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogCourse is a course as returned by the external catalog API,
// before any defaulting or mapping is applied.
type CatalogCourse struct {
	Title       string
	Slug        string
	Description string
	TeacherName string
}
