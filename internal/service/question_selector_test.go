package service

import (
	"testing"

	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/model"
)

func TestSelectForNewExamPicksOnePerLevel(t *testing.T) {
	st := &memState{skills: model.DefaultSkills()}
	seedContent(st)
	repos, _ := newFakeRepositories(st)

	selected, err := NewQuestionSelector().SelectForNewExam(repos)
	if err != nil {
		t.Fatalf("SelectForNewExam: %v", err)
	}
	if len(selected) != len(st.levels) {
		t.Fatalf("selected %d questions, want %d (one per level)", len(selected), len(st.levels))
	}

	seen := make(map[uint]bool)
	for _, eq := range selected {
		if seen[eq.LevelID] {
			t.Fatalf("level %d selected twice", eq.LevelID)
		}
		seen[eq.LevelID] = true

		level := st.findLevel(eq.LevelID)
		belongs := false
		for _, q := range level.Questions {
			if q.ID == eq.QuestionID {
				belongs = true
			}
		}
		if !belongs {
			t.Fatalf("question %d does not belong to level %d", eq.QuestionID, eq.LevelID)
		}
	}
}

func TestSelectForNewExamFailsOnEmptyLevel(t *testing.T) {
	st := &memState{skills: model.DefaultSkills()}
	seedContent(st)
	st.levels = append(st.levels, model.Level{
		ID: 50, SkillID: model.SkillReading, Name: "reading part 2", Order: 8, IsActive: true,
	})
	repos, _ := newFakeRepositories(st)

	_, err := NewQuestionSelector().SelectForNewExam(repos)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("error kind = %v, want not_found", apperr.KindOf(err))
	}
}

func TestSelectForNewExamFailsWithoutLevels(t *testing.T) {
	st := &memState{skills: model.DefaultSkills()}
	repos, _ := newFakeRepositories(st)

	_, err := NewQuestionSelector().SelectForNewExam(repos)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("error kind = %v, want not_found", apperr.KindOf(err))
	}
}

func TestSelectForNewExamSkipsInactiveQuestions(t *testing.T) {
	st := &memState{skills: model.DefaultSkills()}
	seedContent(st)
	// The retired question must never be picked even though it still
	// belongs to the level.
	st.levels[0].Questions = append(st.levels[0].Questions, model.Question{
		ID: 101, LevelID: 10, Title: "Retired", Content: "old", IsActive: false,
	})
	repos, _ := newFakeRepositories(st)

	for i := 0; i < 20; i++ {
		selected, err := NewQuestionSelector().SelectForNewExam(repos)
		if err != nil {
			t.Fatalf("SelectForNewExam: %v", err)
		}
		for _, eq := range selected {
			if eq.QuestionID == 101 {
				t.Fatal("inactive question was selected")
			}
		}
	}
}
