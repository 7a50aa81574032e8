package models

import (
	"time"
)

type Review struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lessonId"`
	StudentID string    `json:"studentId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
