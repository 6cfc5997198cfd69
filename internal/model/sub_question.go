package model

import (
	"time"
)

// SubQuestion is one gradable multiple-choice item within a question.
type SubQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Order      int       `json:"order" gorm:"column:item_order;not null"`
	Answers    []Answer  `json:"answers,omitempty" gorm:"foreignKey:SubQuestionID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CorrectAnswerID returns the id of the correct choice, or 0 when the
// content row is misconfigured.
func (sq SubQuestion) CorrectAnswerID() uint {
	for _, a := range sq.Answers {
		if a.IsCorrect {
			return a.ID
		}
	}
	return 0
}
