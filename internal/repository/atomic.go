package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles the per-entity repositories so services can receive
// the whole set once, and the Atomic runner can hand out a transaction-scoped
// set inside a unit of work.
type Repositories struct {
	Exam           ExamRepository
	Skill          SkillRepository
	SkillStatus    SkillStatusRepository
	Level          LevelRepository
	ExamQuestion   ExamQuestionRepository
	ExamAnswer     ExamAnswerRepository
	ExamSubmission ExamSubmissionRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Exam:           NewExamRepository(db),
		Skill:          NewSkillRepository(db),
		SkillStatus:    NewSkillStatusRepository(db),
		Level:          NewLevelRepository(db),
		ExamQuestion:   NewExamQuestionRepository(db),
		ExamAnswer:     NewExamAnswerRepository(db),
		ExamSubmission: NewExamSubmissionRepository(db),
	}
}

// Atomic runs fn inside one transactional unit. If fn returns an error the
// unit rolls back entirely; otherwise it commits. Services depend on this
// interface rather than on *gorm.DB.
type Atomic interface {
	Transaction(fn func(r *Repositories) error) error
}

type gormAtomic struct {
	db *gorm.DB
}

func NewAtomic(db *gorm.DB) Atomic {
	return &gormAtomic{db: db}
}

func (a *gormAtomic) Transaction(fn func(r *Repositories) error) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
