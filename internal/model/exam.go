package model

import (
	"time"
)

// Exam is one candidate's run through the full four-skill exam.
// StartTime and EndTime are stringified millisecond epochs; external
// consumers parse them directly, so the encoding must not change.
type Exam struct {
	ID                     uint              `gorm:"primarykey" json:"id"`
	UserID                 *uint             `json:"user_id,omitempty" gorm:"index"` // nullable: SSO-created accounts may not exist yet at creation
	Code                   string            `json:"code" gorm:"not null"`
	StartTime              string            `json:"start_time" gorm:"not null"`
	EndTime                string            `json:"end_time" gorm:"not null"`
	IsDeleted              bool              `json:"is_deleted" gorm:"default:false;index"`
	IsActive               bool              `json:"is_active" gorm:"default:true"`
	IsDone                 bool              `json:"is_done" gorm:"default:false"`
	WritingGradedByAI      bool              `json:"writing_graded_by_ai" gorm:"default:false"`
	WritingGradedByPerson  bool              `json:"writing_graded_by_person" gorm:"default:false"`
	SpeakingGradedByAI     bool              `json:"speaking_graded_by_ai" gorm:"default:false"`
	SpeakingGradedByPerson bool              `json:"speaking_graded_by_person" gorm:"default:false"`
	SkillStatuses          []ExamSkillStatus `json:"skill_statuses,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}
