package model

import (
	"time"
)

// Question is one content item within a level. Listening/reading questions
// carry sub-questions; writing/speaking questions are answered as free text.
type Question struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	LevelID      uint          `json:"level_id" gorm:"not null;index"`
	Title        string        `json:"title" gorm:"not null"`
	Content      string        `json:"content" gorm:"type:text;not null"`
	AudioURL     *string       `json:"audio_url,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	IsDeleted    bool          `json:"is_deleted" gorm:"default:false"`
	SubQuestions []SubQuestion `json:"sub_questions,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
