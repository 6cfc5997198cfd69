package model

// Skill identifiers. The catalog is fixed at these four rows.
const (
	SkillListening = "listening"
	SkillReading   = "reading"
	SkillWriting   = "writing"
	SkillSpeaking  = "speaking"
)

// Skill is one catalog row per exam section. ExpiredTime is the section's
// real window in minutes, applied when the section is activated.
type Skill struct {
	ID            string `gorm:"primarykey" json:"id"`
	Name          string `json:"name" gorm:"not null"`
	Order         int    `json:"order" gorm:"column:skill_order;not null"`
	ExpiredTime   int    `json:"expired_time" gorm:"not null"`
	TotalQuestion int    `json:"total_question" gorm:"not null"`
}

// DefaultSkills returns the seed catalog in progression order.
func DefaultSkills() []Skill {
	return []Skill{
		{ID: SkillListening, Name: "Listening", Order: 0, ExpiredTime: 40, TotalQuestion: 35},
		{ID: SkillReading, Name: "Reading", Order: 1, ExpiredTime: 60, TotalQuestion: 40},
		{ID: SkillWriting, Name: "Writing", Order: 2, ExpiredTime: 60, TotalQuestion: 2},
		{ID: SkillSpeaking, Name: "Speaking", Order: 3, ExpiredTime: 12, TotalQuestion: 3},
	}
}

// SkillMap keys a skill list by ID.
func SkillMap(skills []Skill) map[string]Skill {
	m := make(map[string]Skill, len(skills))
	for _, s := range skills {
		m[s.ID] = s
	}
	return m
}
