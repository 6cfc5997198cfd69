package service

import (
	"errors"
	"sort"

	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"gorm.io/gorm"
)

// memState is the shared backing store of the in-memory fake repositories.
// The fake Atomic snapshots it before each unit of work and restores it on
// error, mirroring transactional rollback.
type memState struct {
	exams         []model.Exam
	skills        []model.Skill
	statuses      []model.ExamSkillStatus
	levels        []model.Level
	examQuestions []model.ExamQuestion
	examAnswers   []model.ExamAnswer
	submissions   []model.ExamSubmission
	nextID        uint

	failExamQuestionCreate bool
}

func (st *memState) id() uint {
	st.nextID++
	return st.nextID
}

func (st *memState) clone() *memState {
	cp := *st
	cp.exams = append([]model.Exam(nil), st.exams...)
	cp.skills = append([]model.Skill(nil), st.skills...)
	cp.statuses = append([]model.ExamSkillStatus(nil), st.statuses...)
	cp.levels = append([]model.Level(nil), st.levels...)
	cp.examQuestions = append([]model.ExamQuestion(nil), st.examQuestions...)
	cp.examAnswers = append([]model.ExamAnswer(nil), st.examAnswers...)
	cp.submissions = append([]model.ExamSubmission(nil), st.submissions...)
	return &cp
}

func (st *memState) sortedLevels() []model.Level {
	levels := append([]model.Level(nil), st.levels...)
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Order < levels[j].Order })
	return levels
}

func (st *memState) findQuestion(id uint) model.Question {
	for _, lvl := range st.levels {
		for _, q := range lvl.Questions {
			if q.ID == id {
				return q
			}
		}
	}
	return model.Question{}
}

func (st *memState) findLevel(id uint) model.Level {
	for _, lvl := range st.levels {
		if lvl.ID == id {
			return lvl
		}
	}
	return model.Level{}
}

type fakeExamRepo struct{ st *memState }

func (f *fakeExamRepo) Create(exam *model.Exam) error {
	exam.ID = f.st.id()
	f.st.exams = append(f.st.exams, *exam)
	return nil
}

func (f *fakeExamRepo) FindByID(id uint) (*model.Exam, error) {
	for i := range f.st.exams {
		if f.st.exams[i].ID == id && !f.st.exams[i].IsDeleted {
			exam := f.st.exams[i]
			return &exam, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExamRepo) FindLatestByUser(userID uint) (*model.Exam, error) {
	for i := len(f.st.exams) - 1; i >= 0; i-- {
		e := f.st.exams[i]
		if e.IsDeleted || e.UserID == nil || *e.UserID != userID {
			continue
		}
		return &e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExamRepo) Update(exam *model.Exam) error {
	for i := range f.st.exams {
		if f.st.exams[i].ID == exam.ID {
			f.st.exams[i] = *exam
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeExamRepo) SoftDelete(id uint) error {
	for i := range f.st.exams {
		if f.st.exams[i].ID == id {
			f.st.exams[i].IsDeleted = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeSkillRepo struct{ st *memState }

func (f *fakeSkillRepo) FindAll() ([]model.Skill, error) {
	skills := append([]model.Skill(nil), f.st.skills...)
	sort.SliceStable(skills, func(i, j int) bool { return skills[i].Order < skills[j].Order })
	return skills, nil
}

func (f *fakeSkillRepo) FindByID(id string) (*model.Skill, error) {
	for _, s := range f.st.skills {
		if s.ID == id {
			skill := s
			return &skill, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSkillStatusRepo struct{ st *memState }

func (f *fakeSkillStatusRepo) CreateBatch(statuses []model.ExamSkillStatus) error {
	for i := range statuses {
		statuses[i].ID = f.st.id()
		f.st.statuses = append(f.st.statuses, statuses[i])
	}
	return nil
}

func (f *fakeSkillStatusRepo) FindByExam(examID uint) ([]model.ExamSkillStatus, error) {
	var out []model.ExamSkillStatus
	for _, s := range f.st.statuses {
		if s.ExamID == examID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeSkillStatusRepo) FindByExamAndSkill(examID uint, skillID string) (*model.ExamSkillStatus, error) {
	for _, s := range f.st.statuses {
		if s.ExamID == examID && s.SkillID == skillID {
			status := s
			return &status, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSkillStatusRepo) Update(status *model.ExamSkillStatus) error {
	for i := range f.st.statuses {
		if f.st.statuses[i].ID == status.ID {
			f.st.statuses[i] = *status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeLevelRepo struct{ st *memState }

func (f *fakeLevelRepo) FindActiveWithQuestions() ([]model.Level, error) {
	var out []model.Level
	for _, lvl := range f.st.sortedLevels() {
		if !lvl.IsActive || lvl.IsDeleted {
			continue
		}
		copyLvl := lvl
		copyLvl.Questions = nil
		for _, q := range lvl.Questions {
			if q.IsActive && !q.IsDeleted {
				copyLvl.Questions = append(copyLvl.Questions, q)
			}
		}
		out = append(out, copyLvl)
	}
	return out, nil
}

func (f *fakeLevelRepo) CountActiveBySkill(skillID string) (int64, error) {
	var count int64
	for _, lvl := range f.st.levels {
		if lvl.SkillID == skillID && lvl.IsActive && !lvl.IsDeleted {
			count++
		}
	}
	return count, nil
}

type fakeExamQuestionRepo struct{ st *memState }

func (f *fakeExamQuestionRepo) CreateBatch(questions []model.ExamQuestion) error {
	if f.st.failExamQuestionCreate {
		return errors.New("forced exam question insert failure")
	}
	for i := range questions {
		questions[i].ID = f.st.id()
		f.st.examQuestions = append(f.st.examQuestions, questions[i])
	}
	return nil
}

func (f *fakeExamQuestionRepo) FindByExamAndLevel(examID, levelID uint) (*model.ExamQuestion, error) {
	for _, eq := range f.st.examQuestions {
		if eq.ExamID == examID && eq.LevelID == levelID {
			eq.Level = f.st.findLevel(eq.LevelID)
			eq.Question = f.st.findQuestion(eq.QuestionID)
			return &eq, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExamQuestionRepo) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamQuestion, error) {
	var out []model.ExamQuestion
	for _, lvl := range f.st.sortedLevels() {
		if lvl.SkillID != skillID {
			continue
		}
		for _, eq := range f.st.examQuestions {
			if eq.ExamID == examID && eq.LevelID == lvl.ID {
				eq.Level = lvl
				eq.Question = f.st.findQuestion(eq.QuestionID)
				out = append(out, eq)
			}
		}
	}
	return out, nil
}

type fakeExamAnswerRepo struct{ st *memState }

func (f *fakeExamAnswerRepo) CreateBatch(answers []model.ExamAnswer) error {
	for i := range answers {
		answers[i].ID = f.st.id()
		f.st.examAnswers = append(f.st.examAnswers, answers[i])
	}
	return nil
}

func (f *fakeExamAnswerRepo) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamAnswer, error) {
	var out []model.ExamAnswer
	for _, a := range f.st.examAnswers {
		if a.ExamID == examID && a.SkillID == skillID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeExamSubmissionRepo struct{ st *memState }

func (f *fakeExamSubmissionRepo) Create(sub *model.ExamSubmission) error {
	for _, existing := range f.st.submissions {
		if existing.ExamID == sub.ExamID && existing.QuestionID == sub.QuestionID {
			return errors.New("UNIQUE constraint failed: exam_submissions")
		}
	}
	sub.ID = f.st.id()
	f.st.submissions = append(f.st.submissions, *sub)
	return nil
}

func (f *fakeExamSubmissionRepo) CreateBatch(subs []model.ExamSubmission) error {
	for i := range subs {
		if err := f.Create(&subs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeExamSubmissionRepo) FindByExamAndQuestion(examID, questionID uint) (*model.ExamSubmission, error) {
	for _, sub := range f.st.submissions {
		if sub.ExamID == examID && sub.QuestionID == questionID {
			out := sub
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExamSubmissionRepo) FindByExamAndSkill(examID uint, skillID string) ([]model.ExamSubmission, error) {
	var out []model.ExamSubmission
	for _, sub := range f.st.submissions {
		if sub.ExamID == examID && sub.SkillID == skillID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeExamSubmissionRepo) CountByExamAndSkill(examID uint, skillID string) (int64, error) {
	var count int64
	for _, sub := range f.st.submissions {
		if sub.ExamID == examID && sub.SkillID == skillID {
			count++
		}
	}
	return count, nil
}

type fakeAtomic struct {
	st    *memState
	repos *repository.Repositories
}

func (a *fakeAtomic) Transaction(fn func(r *repository.Repositories) error) error {
	snapshot := a.st.clone()
	if err := fn(a.repos); err != nil {
		*a.st = *snapshot
		return err
	}
	return nil
}

func newFakeRepositories(st *memState) (*repository.Repositories, repository.Atomic) {
	repos := &repository.Repositories{
		Exam:           &fakeExamRepo{st: st},
		Skill:          &fakeSkillRepo{st: st},
		SkillStatus:    &fakeSkillStatusRepo{st: st},
		Level:          &fakeLevelRepo{st: st},
		ExamQuestion:   &fakeExamQuestionRepo{st: st},
		ExamAnswer:     &fakeExamAnswerRepo{st: st},
		ExamSubmission: &fakeExamSubmissionRepo{st: st},
	}
	return repos, &fakeAtomic{st: st, repos: repos}
}
