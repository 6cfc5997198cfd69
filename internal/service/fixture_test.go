package service

import (
	"testing"
	"time"

	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
)

// fixture wires the engine services over the in-memory fakes with a frozen
// clock. Advance the clock by assigning f.now.
type fixture struct {
	st      *memState
	repos   *repository.Repositories
	atomic  repository.Atomic
	session *examSessionService
	scoring *scoringService
	results *resultService
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := &memState{skills: model.DefaultSkills()}
	seedContent(st)
	repos, atomic := newFakeRepositories(st)

	f := &fixture{
		st:     st,
		repos:  repos,
		atomic: atomic,
		now:    time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	f.session = &examSessionService{
		repos:             repos,
		atomic:            atomic,
		selector:          NewQuestionSelector(),
		progression:       NewSkillProgression(),
		examDuration:      200 * time.Minute,
		provisionalWindow: 50 * time.Minute,
		now:               clock,
	}
	f.scoring = &scoringService{
		repos:       repos,
		atomic:      atomic,
		progression: NewSkillProgression(),
		now:         clock,
	}
	f.results = &resultService{repos: repos}
	return f
}

// seedContent builds a small content catalog:
//
//	listening: 1 level, 1 question with 2 multiple-choice items
//	reading:   1 level, 1 question with 1 multiple-choice item
//	writing:   2 levels, 1 free-text question each
//	speaking:  3 levels, 1 free-text question each
func seedContent(st *memState) {
	choice := func(id uint, subID uint, content string, correct bool) model.Answer {
		return model.Answer{ID: id, SubQuestionID: subID, Content: content, IsCorrect: correct}
	}

	st.levels = []model.Level{
		{
			ID: 10, SkillID: model.SkillListening, Name: "listening part 1", Order: 0, IsActive: true,
			Questions: []model.Question{{
				ID: 100, LevelID: 10, Title: "Conversation", Content: "Listen and answer.", IsActive: true,
				SubQuestions: []model.SubQuestion{
					{ID: 1001, QuestionID: 100, Content: "Where are the speakers?", Order: 0, Answers: []model.Answer{
						choice(5001, 1001, "A1", true),
						choice(5002, 1001, "B1", false),
					}},
					{ID: 1002, QuestionID: 100, Content: "What will the man do next?", Order: 1, Answers: []model.Answer{
						choice(5003, 1002, "A2", true),
						choice(5004, 1002, "B2", false),
					}},
				},
			}},
		},
		{
			ID: 20, SkillID: model.SkillReading, Name: "reading part 1", Order: 1, IsActive: true,
			Questions: []model.Question{{
				ID: 200, LevelID: 20, Title: "Passage", Content: "Read and answer.", IsActive: true,
				SubQuestions: []model.SubQuestion{
					{ID: 2001, QuestionID: 200, Content: "What is the main idea?", Order: 0, Answers: []model.Answer{
						choice(6001, 2001, "R-A", true),
						choice(6002, 2001, "R-B", false),
					}},
				},
			}},
		},
		{
			ID: 30, SkillID: model.SkillWriting, Name: "writing task 1", Order: 2, IsActive: true,
			Questions: []model.Question{{
				ID: 300, LevelID: 30, Title: "Letter", Content: "Write a letter.", IsActive: true,
			}},
		},
		{
			ID: 31, SkillID: model.SkillWriting, Name: "writing task 2", Order: 3, IsActive: true,
			Questions: []model.Question{{
				ID: 310, LevelID: 31, Title: "Essay", Content: "Write an essay.", IsActive: true,
			}},
		},
		{
			ID: 40, SkillID: model.SkillSpeaking, Name: "speaking part 1", Order: 4, IsActive: true,
			Questions: []model.Question{{
				ID: 400, LevelID: 40, Title: "Introduction", Content: "Introduce yourself.", IsActive: true,
			}},
		},
		{
			ID: 41, SkillID: model.SkillSpeaking, Name: "speaking part 2", Order: 5, IsActive: true,
			Questions: []model.Question{{
				ID: 410, LevelID: 41, Title: "Topic", Content: "Describe your hometown.", IsActive: true,
			}},
		},
		{
			ID: 42, SkillID: model.SkillSpeaking, Name: "speaking part 3", Order: 6, IsActive: true,
			Questions: []model.Question{{
				ID: 420, LevelID: 42, Title: "Discussion", Content: "Discuss city life.", IsActive: true,
			}},
		},
	}
}

// assignedQuestionID returns the question assigned to a level for the
// latest attempt.
func (f *fixture) assignedQuestionID(t *testing.T, levelID uint) uint {
	t.Helper()
	for _, eq := range f.st.examQuestions {
		if eq.LevelID == levelID {
			return eq.QuestionID
		}
	}
	t.Fatalf("no question assigned for level %d", levelID)
	return 0
}

func (f *fixture) statusOf(t *testing.T, skillID string) model.ExamSkillStatus {
	t.Helper()
	for _, st := range f.st.statuses {
		if st.SkillID == skillID {
			return st
		}
	}
	t.Fatalf("no status row for skill %s", skillID)
	return model.ExamSkillStatus{}
}
