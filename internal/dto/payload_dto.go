package dto

// PayloadAnswerDTO is one answer choice as shown to the candidate.
// Correctness deliberately has no field here.
type PayloadAnswerDTO struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// PayloadSubQuestionDTO is one gradable item as shown to the candidate.
type PayloadSubQuestionDTO struct {
	ID      uint               `json:"id"`
	Content string             `json:"content"`
	Order   int                `json:"order"`
	Answers []PayloadAnswerDTO `json:"answers"`
}

// PayloadQuestionDTO is one assigned question as shown to the candidate.
type PayloadQuestionDTO struct {
	ID           uint                    `json:"id"`
	LevelID      uint                    `json:"level_id"`
	LevelName    string                  `json:"level_name,omitempty"`
	Title        string                  `json:"title"`
	Content      string                  `json:"content"`
	AudioURL     *string                 `json:"audio_url,omitempty"`
	ImageURL     *string                 `json:"image_url,omitempty"`
	SubQuestions []PayloadSubQuestionDTO `json:"sub_questions,omitempty"`
}

// SkillPayloadDTO is what ContinueExam returns: the active skill's status
// row plus the full question payload for that skill only.
type SkillPayloadDTO struct {
	SkillID   string               `json:"skill_id"`
	Status    SkillStatusDTO       `json:"status"`
	Questions []PayloadQuestionDTO `json:"questions"`
}

// SpeakingQuestionDTO is the current speaking question, or a completion
// signal once every assigned speaking question has a submission.
type SpeakingQuestionDTO struct {
	Completed bool                `json:"completed"`
	Question  *PayloadQuestionDTO `json:"question,omitempty"`
}

// SpeakingSubmissionDTO reports one accepted speaking submission.
type SpeakingSubmissionDTO struct {
	QuestionID uint `json:"question_id"`
	Submitted  int  `json:"submitted"`
	Total      int  `json:"total"`
	Finished   bool `json:"finished"`
}
