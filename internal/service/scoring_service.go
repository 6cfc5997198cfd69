package service

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/dto"
	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoringService validates, persists and scores submissions. Listening and
// reading are auto-graded against the stored correct answers; writing and
// speaking are persisted for the external grading collaborator.
type ScoringService interface {
	SubmitSkill(ownerID uint, req dto.SubmitSkillRequest) (*dto.SubmitSkillResultDTO, error)
	SubmitSpeakingSkill(ownerID uint, req dto.SubmitSpeakingRequest) (*dto.SpeakingSubmissionDTO, error)
	GetCurrentSpeakingQuestion(ownerID uint) (*dto.SpeakingQuestionDTO, error)
}

type scoringService struct {
	repos       *repository.Repositories
	atomic      repository.Atomic
	progression SkillProgression
	now         func() time.Time
}

func NewScoringService(
	repos *repository.Repositories,
	atomic repository.Atomic,
	progression SkillProgression,
) ScoringService {
	return &scoringService{
		repos:       repos,
		atomic:      atomic,
		progression: progression,
		now:         time.Now,
	}
}

// SubmitSkill handles a full-skill submission. The submitted question count
// must match the skill's content-level count; all writes happen in one
// transactional unit and the skill status is left unchanged on failure.
func (s *scoringService) SubmitSkill(ownerID uint, req dto.SubmitSkillRequest) (*dto.SubmitSkillResultDTO, error) {
	if req.SkillID == "" {
		return nil, apperr.New(apperr.Validation, "skill id is required")
	}

	actx, err := resolveCurrentAttempt(s.repos, s.progression, ownerID, s.now())
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Str("skillID", req.SkillID).Msg("SubmitSkill: no active attempt")
		return nil, err
	}

	skill, ok := actx.skills[req.SkillID]
	if !ok {
		return nil, apperr.New(apperr.Validation, "unknown skill %q", req.SkillID)
	}
	status := actx.statusOf(req.SkillID)
	if status == nil {
		return nil, apperr.New(apperr.Internal, "attempt %d has no status row for skill %s", actx.exam.ID, req.SkillID)
	}

	levelCount, err := s.repos.Level.CountActiveBySkill(req.SkillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to count levels for skill %s", req.SkillID)
	}
	if int64(len(req.Questions)) != levelCount {
		return nil, apperr.New(apperr.Validation, "skill %s expects %d questions, got %d", req.SkillID, levelCount, len(req.Questions))
	}

	eqs, err := s.repos.ExamQuestion.FindByExamAndSkill(actx.exam.ID, req.SkillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load assigned questions for skill %s", req.SkillID)
	}

	switch req.SkillID {
	case model.SkillListening, model.SkillReading:
		return s.scoreObjective(actx, skill, status, eqs, req)
	default:
		return s.storeSubjective(actx, skill, status, eqs, req)
	}
}

// scoreObjective grades listening/reading: one result row per answered
// sub-item, score incremented on each match. Unanswered sub-items produce
// no row and are not scored as wrong.
func (s *scoringService) scoreObjective(actx *attemptContext, skill model.Skill, status *model.ExamSkillStatus, eqs []model.ExamQuestion, req dto.SubmitSkillRequest) (*dto.SubmitSkillResultDTO, error) {
	assigned := make(map[uint]bool, len(eqs))
	correctBySub := make(map[uint]uint)
	for _, eq := range eqs {
		assigned[eq.QuestionID] = true
		for _, sq := range eq.Question.SubQuestions {
			correctBySub[sq.ID] = sq.CorrectAnswerID()
		}
	}

	score := 0
	var rows []model.ExamAnswer
	for _, q := range req.Questions {
		if !assigned[q.QuestionID] {
			return nil, apperr.New(apperr.NotFound, "question %d is not part of attempt %d", q.QuestionID, actx.exam.ID)
		}
		for _, item := range q.SubQuestions {
			if item.AnswerID == nil {
				continue
			}
			correct, ok := correctBySub[item.SubQuestionID]
			if !ok {
				return nil, apperr.New(apperr.NotFound, "unknown sub-question %d for skill %s", item.SubQuestionID, skill.ID)
			}
			if *item.AnswerID == correct {
				score++
			}
			rows = append(rows, model.ExamAnswer{
				ExamID:        actx.exam.ID,
				SkillID:       skill.ID,
				SubQuestionID: item.SubQuestionID,
				AnswerID:      *item.AnswerID,
			})
		}
	}

	err := s.atomic.Transaction(func(r *repository.Repositories) error {
		if len(rows) > 0 {
			if err := r.ExamAnswer.CreateBatch(rows); err != nil {
				return apperr.Wrap(apperr.Internal, err, "failed to persist answers for skill %s", skill.ID)
			}
		}
		status.Status = model.StatusFinished
		status.Score = float64(score)
		if err := r.SkillStatus.Update(status); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to finish skill %s", skill.ID)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", actx.exam.ID).Str("skillID", skill.ID).Msg("SubmitSkill: scoring transaction rolled back")
		return nil, err
	}

	log.Info().Uint("examID", actx.exam.ID).Str("skillID", skill.ID).Int("score", score).Int("answered", len(rows)).Msg("SubmitSkill: skill scored")
	return &dto.SubmitSkillResultDTO{
		SkillID:       skill.ID,
		Status:        model.StatusFinished,
		Score:         float64(score),
		TotalQuestion: skill.TotalQuestion,
	}, nil
}

// storeSubjective persists writing/speaking free-text submissions without
// scoring; grading happens later through the external collaborator.
func (s *scoringService) storeSubjective(actx *attemptContext, skill model.Skill, status *model.ExamSkillStatus, eqs []model.ExamQuestion, req dto.SubmitSkillRequest) (*dto.SubmitSkillResultDTO, error) {
	assigned := make(map[uint]bool, len(eqs))
	for _, eq := range eqs {
		assigned[eq.QuestionID] = true
	}

	subs := make([]model.ExamSubmission, 0, len(req.Questions))
	for _, q := range req.Questions {
		if !assigned[q.QuestionID] {
			return nil, apperr.New(apperr.NotFound, "question %d is not part of attempt %d", q.QuestionID, actx.exam.ID)
		}
		subs = append(subs, model.ExamSubmission{
			ExamID:     actx.exam.ID,
			SkillID:    skill.ID,
			QuestionID: q.QuestionID,
			Content:    q.Answer,
		})
	}

	err := s.atomic.Transaction(func(r *repository.Repositories) error {
		if err := r.ExamSubmission.CreateBatch(subs); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to persist submissions for skill %s", skill.ID)
		}
		status.Status = model.StatusFinished
		if err := r.SkillStatus.Update(status); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to finish skill %s", skill.ID)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", actx.exam.ID).Str("skillID", skill.ID).Msg("SubmitSkill: submission transaction rolled back")
		return nil, err
	}

	log.Info().Uint("examID", actx.exam.ID).Str("skillID", skill.ID).Int("submissions", len(subs)).Msg("SubmitSkill: submissions stored")
	return &dto.SubmitSkillResultDTO{
		SkillID:       skill.ID,
		Status:        model.StatusFinished,
		Score:         status.Score,
		TotalQuestion: skill.TotalQuestion,
	}, nil
}

// SubmitSpeakingSkill accepts a single speaking answer for one level. Each
// assigned question may be submitted at most once; speaking finishes
// automatically when the last distinct question is accepted.
func (s *scoringService) SubmitSpeakingSkill(ownerID uint, req dto.SubmitSpeakingRequest) (*dto.SpeakingSubmissionDTO, error) {
	actx, err := resolveCurrentAttempt(s.repos, s.progression, ownerID, s.now())
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Msg("SubmitSpeakingSkill: no active attempt")
		return nil, err
	}
	status := actx.statusOf(model.SkillSpeaking)
	if status == nil {
		return nil, apperr.New(apperr.Internal, "attempt %d has no speaking status row", actx.exam.ID)
	}

	eq, err := s.repos.ExamQuestion.FindByExamAndLevel(actx.exam.ID, req.LevelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no question assigned for level %d in attempt %d", req.LevelID, actx.exam.ID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load assigned question for level %d", req.LevelID)
	}

	if _, err := s.repos.ExamSubmission.FindByExamAndQuestion(actx.exam.ID, eq.QuestionID); err == nil {
		return nil, apperr.New(apperr.Conflict, "question %d has already been submitted", eq.QuestionID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to check existing submission for question %d", eq.QuestionID)
	}

	var submitted int64
	err = s.atomic.Transaction(func(r *repository.Repositories) error {
		sub := model.ExamSubmission{
			ExamID:     actx.exam.ID,
			SkillID:    model.SkillSpeaking,
			QuestionID: eq.QuestionID,
			Content:    req.Answer,
		}
		if err := r.ExamSubmission.Create(&sub); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to persist speaking submission")
		}
		count, countErr := r.ExamSubmission.CountByExamAndSkill(actx.exam.ID, model.SkillSpeaking)
		if countErr != nil {
			return apperr.Wrap(apperr.Internal, countErr, "failed to count speaking submissions")
		}
		submitted = count
		if int(submitted) >= status.TotalQuestion {
			status.Status = model.StatusFinished
			if err := r.SkillStatus.Update(status); err != nil {
				return apperr.Wrap(apperr.Internal, err, "failed to finish speaking skill")
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("examID", actx.exam.ID).Uint("levelID", req.LevelID).Msg("SubmitSpeakingSkill: transaction rolled back")
		return nil, err
	}

	log.Info().Uint("examID", actx.exam.ID).Uint("questionID", eq.QuestionID).Int64("submitted", submitted).Msg("SubmitSpeakingSkill: submission accepted")
	return &dto.SpeakingSubmissionDTO{
		QuestionID: eq.QuestionID,
		Submitted:  int(submitted),
		Total:      status.TotalQuestion,
		Finished:   status.Status == model.StatusFinished,
	}, nil
}

// GetCurrentSpeakingQuestion returns the first assigned speaking question
// without a submission, or a completion signal once none remain. Reaching
// completion here also finalizes the speaking status.
func (s *scoringService) GetCurrentSpeakingQuestion(ownerID uint) (*dto.SpeakingQuestionDTO, error) {
	actx, err := resolveCurrentAttempt(s.repos, s.progression, ownerID, s.now())
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Msg("GetCurrentSpeakingQuestion: no active attempt")
		return nil, err
	}

	eqs, err := s.repos.ExamQuestion.FindByExamAndSkill(actx.exam.ID, model.SkillSpeaking)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load speaking questions for attempt %d", actx.exam.ID)
	}
	subs, err := s.repos.ExamSubmission.FindByExamAndSkill(actx.exam.ID, model.SkillSpeaking)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load speaking submissions for attempt %d", actx.exam.ID)
	}

	submitted := make(map[uint]bool, len(subs))
	for _, sub := range subs {
		submitted[sub.QuestionID] = true
	}
	for _, eq := range eqs {
		if submitted[eq.QuestionID] {
			continue
		}
		var question dto.PayloadQuestionDTO
		copier.Copy(&question, &eq.Question)
		question.LevelID = eq.LevelID
		question.LevelName = eq.Level.Name
		return &dto.SpeakingQuestionDTO{Question: &question}, nil
	}

	status := actx.statusOf(model.SkillSpeaking)
	if status != nil && status.Status != model.StatusFinished {
		status.Status = model.StatusFinished
		if err := s.repos.SkillStatus.Update(status); err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to finish speaking skill")
		}
		log.Info().Uint("examID", actx.exam.ID).Msg("GetCurrentSpeakingQuestion: speaking completed, status finalized")
	}
	return &dto.SpeakingQuestionDTO{Completed: true}, nil
}
