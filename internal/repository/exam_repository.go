package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	// FindLatestByUser returns the most recent non-deleted exam for the
	// owner, or gorm.ErrRecordNotFound.
	FindLatestByUser(userID uint) (*model.Exam, error)
	Update(exam *model.Exam) error
	SoftDelete(id uint) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Where("is_deleted = ?", false).First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindLatestByUser(userID uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}

func (r *examRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.Exam{}).Where("id = ?", id).Update("is_deleted", true).Error
}
