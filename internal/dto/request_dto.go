package dto

// SubmittedSubQuestion carries one multiple-choice selection. AnswerID is
// nil when the candidate left the item blank; blank items are never scored
// and produce no result row.
type SubmittedSubQuestion struct {
	SubQuestionID uint  `json:"sub_question_id" binding:"required"`
	AnswerID      *uint `json:"answer_id"`
}

// SubmittedQuestion is one question of a full-skill submission. Listening
// and reading fill SubQuestions; writing and speaking fill Answer.
type SubmittedQuestion struct {
	QuestionID   uint                   `json:"question_id" binding:"required"`
	Answer       string                 `json:"answer"`
	SubQuestions []SubmittedSubQuestion `json:"sub_questions"`
}

// SubmitSkillRequest is the full-skill submission payload.
type SubmitSkillRequest struct {
	SkillID   string              `json:"skill_id" binding:"required,oneof=listening reading writing speaking"`
	Questions []SubmittedQuestion `json:"questions" binding:"required,dive"`
}

// SubmitSpeakingRequest is the single-question speaking submission payload.
type SubmitSpeakingRequest struct {
	LevelID uint   `json:"level_id" binding:"required"`
	Answer  string `json:"answer" binding:"required"`
}
