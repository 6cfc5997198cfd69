package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type ExamAnswerRepository interface {
	CreateBatch(answers []model.ExamAnswer) error
	FindByExamAndSkill(examID uint, skillID string) ([]model.ExamAnswer, error)
}

type examAnswerRepository struct {
	db *gorm.DB
}

func NewExamAnswerRepository(db *gorm.DB) ExamAnswerRepository {
	return &examAnswerRepository{db: db}
}

func (r *examAnswerRepository) CreateBatch(answers []model.ExamAnswer) error {
	return r.db.Create(&answers).Error
}

func (r *examAnswerRepository) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamAnswer, error) {
	var answers []model.ExamAnswer
	err := r.db.
		Where("exam_id = ? AND skill_id = ?", examID, skillID).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
