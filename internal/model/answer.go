package model

import (
	"time"
)

// Answer is one choice of a sub-question. IsCorrect never leaves the
// engine in candidate-facing payloads.
type Answer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SubQuestionID uint      `json:"sub_question_id" gorm:"not null;index"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	IsCorrect     bool      `json:"is_correct" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
