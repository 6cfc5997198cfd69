package repository

import (
	"github.com/ndthien/vexam/internal/model"
	"gorm.io/gorm"
)

type SkillRepository interface {
	// FindAll returns the skill catalog in progression order.
	FindAll() ([]model.Skill, error)
	FindByID(id string) (*model.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) FindAll() ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.Order("skill_order ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(id string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}
