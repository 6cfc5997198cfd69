package dto

// SkillStatusDTO mirrors one ExamSkillStatus row.
type SkillStatusDTO struct {
	SkillID       string  `json:"skill_id"`
	StartTime     string  `json:"start_time,omitempty"`
	EndTime       string  `json:"end_time,omitempty"`
	Status        string  `json:"status"`
	Order         int     `json:"order"`
	Score         float64 `json:"score"`
	TotalQuestion int     `json:"total_question"`
}

// ExamDTO mirrors one attempt.
type ExamDTO struct {
	ID        uint   `json:"id"`
	UserID    *uint  `json:"user_id,omitempty"`
	Code      string `json:"code"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
	IsDone    bool   `json:"is_done"`
}

// CurrentExamDTO is the resume view: the attempt, its skill statuses in
// progression order, and which skill is currently active.
type CurrentExamDTO struct {
	Exam          ExamDTO          `json:"exam"`
	SkillStatuses []SkillStatusDTO `json:"skill_statuses"`
	ActiveSkillID string           `json:"active_skill_id"`
}

// ExamScoreDTO is the compact scoring summary.
type ExamScoreDTO struct {
	Exam          ExamDTO          `json:"exam"`
	SkillStatuses []SkillStatusDTO `json:"skill_statuses"`
}

// SubmitSkillResultDTO reports the outcome of a full-skill submission.
type SubmitSkillResultDTO struct {
	SkillID       string  `json:"skill_id"`
	Status        string  `json:"status"`
	Score         float64 `json:"score"`
	TotalQuestion int     `json:"total_question"`
}

// SkillResultItemDTO is the uniform per-item review record. Listening and
// reading produce one per sub-question, writing and speaking one per
// question; nil fields mark items never answered or not yet graded.
type SkillResultItemDTO struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Answer   *string  `json:"answer"`
	Point    *float64 `json:"point"`
	Feedback *string  `json:"feedback"`
	IsRated  bool     `json:"is_rated"`
}
