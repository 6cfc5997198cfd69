package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type LevelRepository interface {
	// FindActiveWithQuestions returns every active non-deleted level with
	// its eligible (active, non-deleted) questions preloaded.
	FindActiveWithQuestions() ([]model.Level, error)
	CountActiveBySkill(skillID string) (int64, error)
}

type levelRepository struct {
	db *gorm.DB
}

func NewLevelRepository(db *gorm.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) FindActiveWithQuestions() ([]model.Level, error) {
	var levels []model.Level
	err := r.db.
		Preload("Questions", "is_active = ? AND is_deleted = ?", true, false).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("level_order ASC").
		Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *levelRepository) CountActiveBySkill(skillID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Level{}).
		Where("skill_id = ? AND is_active = ? AND is_deleted = ?", skillID, true, false).
		Count(&count).Error
	return count, err
}
