package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/ndthien/vexam/internal/apperr"
	"github.com/ndthien/vexam/internal/dto"
	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService reshapes stored answers and scores into review views.
type ResultService interface {
	GetScoreOfExam(examID uint) (*dto.ExamScoreDTO, error)
	GetResultOfExam(examID uint, skillID string) ([]dto.SkillResultItemDTO, error)
}

type resultService struct {
	repos *repository.Repositories
}

func NewResultService(repos *repository.Repositories) ResultService {
	return &resultService{repos: repos}
}

func (s *resultService) GetScoreOfExam(examID uint) (*dto.ExamScoreDTO, error) {
	exam, err := s.repos.Exam.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "exam %d not found", examID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load exam %d", examID)
	}
	statuses, err := s.repos.SkillStatus.FindByExam(examID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load skill statuses for exam %d", examID)
	}

	var out dto.ExamScoreDTO
	copier.Copy(&out.Exam, exam)
	out.SkillStatuses = make([]dto.SkillStatusDTO, len(statuses))
	for i := range statuses {
		copier.Copy(&out.SkillStatuses[i], &statuses[i])
	}
	return &out, nil
}

// GetResultOfExam joins assigned questions, submitted content and result
// rows into the uniform per-item record. Listening/reading produce one item
// per sub-question; writing/speaking one per question. Items never answered
// or not yet graded keep nil placeholders.
func (s *resultService) GetResultOfExam(examID uint, skillID string) ([]dto.SkillResultItemDTO, error) {
	switch skillID {
	case model.SkillListening, model.SkillReading, model.SkillWriting, model.SkillSpeaking:
	default:
		return nil, apperr.New(apperr.Validation, "unknown skill %q", skillID)
	}

	if _, err := s.repos.Exam.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "exam %d not found", examID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load exam %d", examID)
	}

	eqs, err := s.repos.ExamQuestion.FindByExamAndSkill(examID, skillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load assigned questions for skill %s", skillID)
	}

	switch skillID {
	case model.SkillListening, model.SkillReading:
		return s.objectiveResults(examID, skillID, eqs)
	default:
		return s.subjectiveResults(examID, skillID, eqs)
	}
}

func (s *resultService) objectiveResults(examID uint, skillID string, eqs []model.ExamQuestion) ([]dto.SkillResultItemDTO, error) {
	answers, err := s.repos.ExamAnswer.FindByExamAndSkill(examID, skillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load result rows for skill %s", skillID)
	}
	chosen := make(map[uint]uint, len(answers))
	for _, a := range answers {
		chosen[a.SubQuestionID] = a.AnswerID
	}

	var items []dto.SkillResultItemDTO
	for _, eq := range eqs {
		for _, sq := range eq.Question.SubQuestions {
			item := dto.SkillResultItemDTO{ID: sq.ID, Question: sq.Content}
			if answerID, ok := chosen[sq.ID]; ok {
				for _, choice := range sq.Answers {
					if choice.ID != answerID {
						continue
					}
					content := choice.Content
					point := 0.0
					if choice.IsCorrect {
						point = 1.0
					}
					item.Answer = &content
					item.Point = &point
					item.IsRated = true
					break
				}
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *resultService) subjectiveResults(examID uint, skillID string, eqs []model.ExamQuestion) ([]dto.SkillResultItemDTO, error) {
	subs, err := s.repos.ExamSubmission.FindByExamAndSkill(examID, skillID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to load submissions for skill %s", skillID)
	}
	byQuestion := make(map[uint]model.ExamSubmission, len(subs))
	for _, sub := range subs {
		byQuestion[sub.QuestionID] = sub
	}

	var items []dto.SkillResultItemDTO
	for _, eq := range eqs {
		item := dto.SkillResultItemDTO{ID: eq.QuestionID, Question: eq.Question.Content}
		if sub, ok := byQuestion[eq.QuestionID]; ok {
			content := sub.Content
			item.Answer = &content
			item.Point = sub.Point
			if sub.Feedback != "" {
				feedback := sub.Feedback
				item.Feedback = &feedback
			}
			item.IsRated = sub.IsRated
		}
		items = append(items, item)
	}
	if items == nil {
		log.Warn().Uint("examID", examID).Str("skillID", skillID).Msg("GetResultOfExam: no assigned questions for skill")
	}
	return items, nil
}
