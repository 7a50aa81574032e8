package models

import (
	"time"
)

type LessonCategory string

const (
	CategorySalsa        LessonCategory = "Salsa"
	CategoryBachata      LessonCategory = "Bachata"
	CategoryHipHop       LessonCategory = "Hip Hop"
	CategoryBallet       LessonCategory = "Ballet"
	CategoryContemporary LessonCategory = "Contemporary"
	CategoryTango        LessonCategory = "Tango"
)

func LessonCategories() []LessonCategory {
	return []LessonCategory{
		CategorySalsa,
		CategoryBachata,
		CategoryHipHop,
		CategoryBallet,
		CategoryContemporary,
		CategoryTango,
	}
}

func (c LessonCategory) IsValid() bool {
	for _, known := range LessonCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type Lesson struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      LessonCategory `json:"category"`
	InstructorID  string         `json:"instructorId"`
	Price         float64        `json:"price"`
	Duration      int            `json:"duration"`
	ImageURL      string         `json:"imageUrl"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	FavoriteCount int            `json:"favoriteCount"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
}
