package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type SkillStatusRepository interface {
	CreateBatch(statuses []model.ExamSkillStatus) error
	// FindByExam returns the exam's status rows in progression order.
	FindByExam(examID uint) ([]model.ExamSkillStatus, error)
	FindByExamAndSkill(examID uint, skillID string) (*model.ExamSkillStatus, error)
	Update(status *model.ExamSkillStatus) error
}

type skillStatusRepository struct {
	db *gorm.DB
}

func NewSkillStatusRepository(db *gorm.DB) SkillStatusRepository {
	return &skillStatusRepository{db: db}
}

func (r *skillStatusRepository) CreateBatch(statuses []model.ExamSkillStatus) error {
	return r.db.Create(&statuses).Error
}

func (r *skillStatusRepository) FindByExam(examID uint) ([]model.ExamSkillStatus, error) {
	var statuses []model.ExamSkillStatus
	err := r.db.
		Where("exam_id = ?", examID).
		Order("skill_order ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *skillStatusRepository) FindByExamAndSkill(examID uint, skillID string) (*model.ExamSkillStatus, error) {
	var status model.ExamSkillStatus
	err := r.db.
		Where("exam_id = ? AND skill_id = ?", examID, skillID).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *skillStatusRepository) Update(status *model.ExamSkillStatus) error {
	return r.db.Save(status).Error
}
