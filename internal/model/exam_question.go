package model

import (
	"time"
)

// ExamQuestion binds the one question selected for a level to one exam.
type ExamQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ExamID     uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_level"`
	LevelID    uint      `json:"level_id" gorm:"not null;uniqueIndex:idx_exam_level"`
	QuestionID uint      `json:"question_id" gorm:"not null"`
	Level      Level     `json:"level,omitempty" gorm:"foreignKey:LevelID"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
