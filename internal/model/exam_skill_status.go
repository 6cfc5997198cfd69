package model

import (
	"time"
)

// Skill status values. A status only ever advances, never regresses.
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusFinished   = "FINISHED"
)

// ExamSkillStatus tracks one skill section of one exam. Exactly four rows
// exist per exam. StartTime stays empty until the section is activated;
// EndTime holds a provisional window at creation and is overwritten with
// the skill's configured window on activation.
type ExamSkillStatus struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ExamID        uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_skill"`
	SkillID       string    `json:"skill_id" gorm:"not null;uniqueIndex:idx_exam_skill"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status" gorm:"not null;default:'NOT_STARTED'"`
	Order         int       `json:"order" gorm:"column:skill_order;not null"`
	Score         float64   `json:"score" gorm:"default:0"`
	TotalQuestion int       `json:"total_question" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
