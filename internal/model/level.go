package model

import (
	"time"
)

// Level is a named subdivision of a skill ("listening part 1") from which
// exactly one question is drawn per exam. Authored by the external content
// platform; read-only for this engine.
type Level struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	SkillID   string     `json:"skill_id" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	Order     int        `json:"order" gorm:"column:level_order;not null"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	IsDeleted bool       `json:"is_deleted" gorm:"default:false"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:LevelID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
