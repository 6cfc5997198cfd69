package model

import (
	"time"
)

// ExamAnswer is one listening/reading result row: the choice the candidate
// made for one sub-question. Unanswered sub-questions produce no row.
type ExamAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamID        uint      `json:"exam_id" gorm:"not null;index"`
	SkillID       string    `json:"skill_id" gorm:"not null"`
	SubQuestionID uint      `json:"sub_question_id" gorm:"not null"`
	AnswerID      uint      `json:"answer_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}
