package model

import (
	"time"
)

// ExamSubmission is one writing/speaking free-text submission for an
// assigned question. Point, Feedback and IsRated are written later by the
// external grading collaborator, never by this engine.
type ExamSubmission struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ExamID     uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_submission_question"`
	SkillID    string    `json:"skill_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_exam_submission_question"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Point      *float64  `json:"point,omitempty"`
	Feedback   string    `json:"feedback,omitempty" gorm:"type:text"`
	IsRated    bool      `json:"is_rated" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
