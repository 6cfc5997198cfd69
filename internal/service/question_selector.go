package service

import (
	"math/rand"

	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionSelector picks one question per content level for a fresh
// attempt. A level without a single eligible question aborts the whole
// selection; partial attempts are never created.
type QuestionSelector interface {
	SelectForNewExam(r *repository.Repositories) ([]model.ExamQuestion, error)
}

type questionSelector struct{}

func NewQuestionSelector() QuestionSelector {
	return &questionSelector{}
}

func (s *questionSelector) SelectForNewExam(r *repository.Repositories) ([]model.ExamQuestion, error) {
	levels, err := r.Level.FindActiveWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("SelectForNewExam: failed to load content levels")
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load content levels")
	}
	if len(levels) == 0 {
		return nil, apperr.New(apperr.NotFound, "no active content levels configured")
	}

	selected := make([]model.ExamQuestion, 0, len(levels))
	for _, level := range levels {
		if len(level.Questions) == 0 {
			log.Warn().Uint("levelID", level.ID).Str("level", level.Name).Msg("SelectForNewExam: level has no eligible questions, aborting")
			return nil, apperr.New(apperr.NotFound, "level %q has no eligible questions", level.Name)
		}
		question := level.Questions[rand.Intn(len(level.Questions))]
		selected = append(selected, model.ExamQuestion{
			LevelID:    level.ID,
			QuestionID: question.ID,
		})
	}
	return selected, nil
}
