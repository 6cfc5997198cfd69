package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type ExamSubmissionRepository interface {
	Create(submission *model.ExamSubmission) error
	CreateBatch(submissions []model.ExamSubmission) error
	FindByExamAndQuestion(examID, questionID uint) (*model.ExamSubmission, error)
	FindByExamAndSkill(examID uint, skillID string) ([]model.ExamSubmission, error)
	CountByExamAndSkill(examID uint, skillID string) (int64, error)
}

type examSubmissionRepository struct {
	db *gorm.DB
}

func NewExamSubmissionRepository(db *gorm.DB) ExamSubmissionRepository {
	return &examSubmissionRepository{db: db}
}

func (r *examSubmissionRepository) Create(submission *model.ExamSubmission) error {
	return r.db.Create(submission).Error
}

func (r *examSubmissionRepository) CreateBatch(submissions []model.ExamSubmission) error {
	return r.db.Create(&submissions).Error
}

func (r *examSubmissionRepository) FindByExamAndQuestion(examID, questionID uint) (*model.ExamSubmission, error) {
	var sub model.ExamSubmission
	err := r.db.
		Where("exam_id = ? AND question_id = ?", examID, questionID).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *examSubmissionRepository) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamSubmission, error) {
	var subs []model.ExamSubmission
	err := r.db.
		Where("exam_id = ? AND skill_id = ?", examID, skillID).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *examSubmissionRepository) CountByExamAndSkill(examID uint, skillID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamSubmission{}).
		Where("exam_id = ? AND skill_id = ?", examID, skillID).
		Count(&count).Error
	return count, err
}
