package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type ExamQuestionRepository interface {
	CreateBatch(questions []model.ExamQuestion) error
	FindByExamAndLevel(examID, levelID uint) (*model.ExamQuestion, error)
	// FindByExamAndSkill returns the exam's assigned questions for one
	// skill, ordered by level, with question content, sub-questions and
	// answer choices preloaded.
	FindByExamAndSkill(examID uint, skillID string) ([]model.ExamQuestion, error)
}

type examQuestionRepository struct {
	db *gorm.DB
}

func NewExamQuestionRepository(db *gorm.DB) ExamQuestionRepository {
	return &examQuestionRepository{db: db}
}

func (r *examQuestionRepository) CreateBatch(questions []model.ExamQuestion) error {
	return r.db.Create(&questions).Error
}

func (r *examQuestionRepository) FindByExamAndLevel(examID, levelID uint) (*model.ExamQuestion, error) {
	var eq model.ExamQuestion
	err := r.db.
		Preload("Question").
		Where("exam_id = ? AND level_id = ?", examID, levelID).
		First(&eq).Error
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *examQuestionRepository) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamQuestion, error) {
	var eqs []model.ExamQuestion
	err := r.db.
		Preload("Level").
		Preload("Question").
		Preload("Question.SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_questions.item_order ASC")
		}).
		Preload("Question.SubQuestions.Answers").
		Joins("JOIN levels ON levels.id = exam_questions.level_id").
		Where("exam_questions.exam_id = ? AND levels.skill_id = ?", examID, skillID).
		Order("levels.level_order ASC").
		Find(&eqs).Error
	if err != nil {
		return nil, err
	}
	return eqs, nil
}
