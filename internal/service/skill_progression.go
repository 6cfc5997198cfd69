package service

import (
	"time"

	"github.com/ndthien/vexam/internal/model"
)

// SkillProgression decides which skill of an attempt is currently active.
// It is a pure decision procedure: expiry is evaluated against the clock on
// every read and is never written back. A skill only becomes FINISHED
// through an explicit submission.
type SkillProgression interface {
	// ActiveSkill walks statuses (already in progression order) and returns
	// the active one, or (nil, true) when the attempt is exhausted.
	ActiveSkill(statuses []model.ExamSkillStatus, skills map[string]model.Skill, now time.Time) (*model.ExamSkillStatus, bool)
}

type skillProgression struct{}

func NewSkillProgression() SkillProgression {
	return &skillProgression{}
}

func (p *skillProgression) ActiveSkill(statuses []model.ExamSkillStatus, skills map[string]model.Skill, now time.Time) (*model.ExamSkillStatus, bool) {
	// Rule 1: the first IN_PROGRESS skill whose window is still open.
	for i := range statuses {
		st := &statuses[i]
		if st.Status != model.StatusInProgress {
			continue
		}
		skill, ok := skills[st.SkillID]
		if !ok {
			continue
		}
		start, err := model.ParseEpochMillis(st.StartTime)
		if err != nil {
			// An IN_PROGRESS row without a parseable start counts as lapsed.
			continue
		}
		deadline := start.Add(time.Duration(skill.ExpiredTime) * time.Minute)
		if now.Before(deadline) {
			return st, false
		}
	}

	// Rule 2: otherwise the first skill not yet begun.
	for i := range statuses {
		if statuses[i].Status == model.StatusNotStarted {
			return &statuses[i], false
		}
	}

	// Rule 3: everything finished or lapsed.
	return nil, true
}
