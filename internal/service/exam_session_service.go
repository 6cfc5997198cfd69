package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ndthien/vexam/config"
	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/dto"
	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSessionService creates, resumes and exposes the current attempt. It
// owns the "what happens next" decision; the progression rules themselves
// live in SkillProgression.
type ExamSessionService interface {
	StartNewExam(ownerID uint) (*dto.CurrentExamDTO, error)
	GetCurrentExam(ownerID uint) (*dto.CurrentExamDTO, error)
	ParticipateExam(ownerID uint) (*dto.CurrentExamDTO, error)
	ContinueExam(ownerID uint) (*dto.SkillPayloadDTO, error)
}

type examSessionService struct {
	repos             *repository.Repositories
	atomic            repository.Atomic
	selector          QuestionSelector
	progression       SkillProgression
	examDuration      time.Duration
	provisionalWindow time.Duration
	now               func() time.Time
}

func NewExamSessionService(
	repos *repository.Repositories,
	atomic repository.Atomic,
	selector QuestionSelector,
	progression SkillProgression,
	cfg *config.Config,
) ExamSessionService {
	return &examSessionService{
		repos:             repos,
		atomic:            atomic,
		selector:          selector,
		progression:       progression,
		examDuration:      time.Duration(cfg.Exam.DurationMin) * time.Minute,
		provisionalWindow: time.Duration(cfg.Exam.ProvisionalWindowMin) * time.Minute,
		now:               time.Now,
	}
}

// attemptContext is the resolved state of an owner's live attempt.
type attemptContext struct {
	exam     *model.Exam
	statuses []model.ExamSkillStatus
	active   *model.ExamSkillStatus
	skills   map[string]model.Skill
}

// statusOf returns the context's status row for one skill.
func (c *attemptContext) statusOf(skillID string) *model.ExamSkillStatus {
	for i := range c.statuses {
		if c.statuses[i].SkillID == skillID {
			return &c.statuses[i]
		}
	}
	return nil
}

// resolveCurrentAttempt loads the owner's latest attempt and computes the
// active skill. It fails with NotFound when no attempt exists and with
// Exhausted when the attempt is done, past its window, or has no resumable
// skill left.
func resolveCurrentAttempt(repos *repository.Repositories, progression SkillProgression, ownerID uint, now time.Time) (*attemptContext, error) {
	exam, err := repos.Exam.FindLatestByUser(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no active attempt for owner %d", ownerID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load current attempt")
	}
	if exam.IsDone {
		return nil, apperr.New(apperr.Exhausted, "attempt %d is already completed", exam.ID)
	}
	end, err := model.ParseEpochMillis(exam.EndTime)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "attempt %d has a corrupt end time", exam.ID)
	}
	if now.After(end) {
		return nil, apperr.New(apperr.Exhausted, "attempt %d time window has passed", exam.ID)
	}

	skills, err := repos.Skill.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load skill catalog")
	}
	statuses, err := repos.SkillStatus.FindByExam(exam.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load skill statuses for attempt %d", exam.ID)
	}

	skillMap := model.SkillMap(skills)
	active, exhausted := progression.ActiveSkill(statuses, skillMap, now)
	if exhausted {
		return nil, apperr.New(apperr.Exhausted, "attempt %d has no resumable skill left", exam.ID)
	}
	return &attemptContext{exam: exam, statuses: statuses, active: active, skills: skillMap}, nil
}

func buildCurrentExamDTO(exam *model.Exam, statuses []model.ExamSkillStatus, activeSkillID string) *dto.CurrentExamDTO {
	var out dto.CurrentExamDTO
	copier.Copy(&out.Exam, exam)
	out.SkillStatuses = make([]dto.SkillStatusDTO, len(statuses))
	for i := range statuses {
		copier.Copy(&out.SkillStatuses[i], &statuses[i])
	}
	out.ActiveSkillID = activeSkillID
	return &out
}

// StartNewExam creates the attempt, its four skill statuses and one
// assigned question per level inside a single transactional unit. On any
// failure the unit rolls back and no partial attempt exists.
func (s *examSessionService) StartNewExam(ownerID uint) (*dto.CurrentExamDTO, error) {
	now := s.now()
	uid := ownerID
	exam := model.Exam{
		UserID:    &uid,
		Code:      uuid.NewString(),
		StartTime: model.EpochMillis(now),
		EndTime:   model.EpochMillis(now.Add(s.examDuration)),
		IsActive:  true,
	}

	var statuses []model.ExamSkillStatus
	var skillMap map[string]model.Skill
	err := s.atomic.Transaction(func(r *repository.Repositories) error {
		assigned, err := s.selector.SelectForNewExam(r)
		if err != nil {
			return err
		}
		skills, err := r.Skill.FindAll()
		if err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to load skill catalog")
		}
		skillMap = model.SkillMap(skills)

		if err := r.Exam.Create(&exam); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to create exam")
		}

		statuses = make([]model.ExamSkillStatus, 0, len(skills))
		for _, sk := range skills {
			statuses = append(statuses, model.ExamSkillStatus{
				ExamID:  exam.ID,
				SkillID: sk.ID,
				Status:  model.StatusNotStarted,
				Order:   sk.Order,
				// Provisional window; the skill's real window is applied
				// when the skill is activated in ContinueExam.
				EndTime:       model.EpochMillis(now.Add(s.provisionalWindow)),
				TotalQuestion: sk.TotalQuestion,
			})
		}
		if err := r.SkillStatus.CreateBatch(statuses); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to create skill statuses")
		}

		for i := range assigned {
			assigned[i].ExamID = exam.ID
		}
		if err := r.ExamQuestion.CreateBatch(assigned); err != nil {
			return apperr.Wrap(apperr.Internal, err, "failed to assign questions")
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("StartNewExam: transaction rolled back")
		return nil, err
	}

	active, _ := s.progression.ActiveSkill(statuses, skillMap, now)
	activeSkillID := ""
	if active != nil {
		activeSkillID = active.SkillID
	}
	log.Info().Uint("examID", exam.ID).Uint("ownerID", ownerID).Str("code", exam.Code).Msg("StartNewExam: attempt created")
	return buildCurrentExamDTO(&exam, statuses, activeSkillID), nil
}

func (s *examSessionService) GetCurrentExam(ownerID uint) (*dto.CurrentExamDTO, error) {
	actx, err := resolveCurrentAttempt(s.repos, s.progression, ownerID, s.now())
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Msg("GetCurrentExam: no active attempt")
		return nil, err
	}
	return buildCurrentExamDTO(actx.exam, actx.statuses, actx.active.SkillID), nil
}

// ParticipateExam is the idempotent entry point: it returns the live
// attempt when one exists and starts a fresh one otherwise.
func (s *examSessionService) ParticipateExam(ownerID uint) (*dto.CurrentExamDTO, error) {
	current, err := s.GetCurrentExam(ownerID)
	if err == nil {
		return current, nil
	}
	switch apperr.KindOf(err) {
	case apperr.NotFound, apperr.Exhausted:
		log.Info().Uint("ownerID", ownerID).Msg("ParticipateExam: no live attempt, starting a new one")
		return s.StartNewExam(ownerID)
	default:
		return nil, err
	}
}

// ContinueExam resumes the active skill. A NOT_STARTED skill is switched to
// IN_PROGRESS here, and only here its configured window replaces the
// provisional one. The returned payload carries the active skill's
// questions without correctness data.
func (s *examSessionService) ContinueExam(ownerID uint) (*dto.SkillPayloadDTO, error) {
	now := s.now()
	actx, err := resolveCurrentAttempt(s.repos, s.progression, ownerID, now)
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Msg("ContinueExam: no active attempt")
		return nil, err
	}

	active := actx.active
	if active.Status == model.StatusNotStarted {
		skill := actx.skills[active.SkillID]
		active.Status = model.StatusInProgress
		active.StartTime = model.EpochMillis(now)
		active.EndTime = model.EpochMillis(now.Add(time.Duration(skill.ExpiredTime) * time.Minute))
		if err := s.repos.SkillStatus.Update(active); err != nil {
			log.Error().Err(err).Uint("examID", actx.exam.ID).Str("skillID", active.SkillID).Msg("ContinueExam: failed to activate skill")
			return nil, apperr.Wrap(apperr.Internal, err, "failed to activate skill %s", active.SkillID)
		}
		log.Info().Uint("examID", actx.exam.ID).Str("skillID", active.SkillID).Msg("ContinueExam: skill activated")
	}

	eqs, err := s.repos.ExamQuestion.FindByExamAndSkill(actx.exam.ID, active.SkillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load questions for skill %s", active.SkillID)
	}

	payload := dto.SkillPayloadDTO{SkillID: active.SkillID}
	copier.Copy(&payload.Status, active)
	payload.Questions = buildQuestionPayload(eqs)
	return &payload, nil
}

// buildQuestionPayload maps assigned questions into candidate-facing DTOs.
// The DTO types carry no correctness fields, so copier drops IsCorrect.
func buildQuestionPayload(eqs []model.ExamQuestion) []dto.PayloadQuestionDTO {
	questions := make([]dto.PayloadQuestionDTO, len(eqs))
	for i, eq := range eqs {
		copier.Copy(&questions[i], &eq.Question)
		questions[i].LevelID = eq.LevelID
		questions[i].LevelName = eq.Level.Name
	}
	return questions
}
