package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ndthien/vexam/internal/dto"
	"github.com/ndthien/vexam/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	sessionSvc service.ExamSessionService
	scoringSvc service.ScoringService
	resultSvc  service.ResultService
}

func NewExamController(
	sessionSvc service.ExamSessionService,
	scoringSvc service.ScoringService,
	resultSvc service.ResultService,
) *ExamController {
	return &ExamController{
		sessionSvc: sessionSvc,
		scoringSvc: scoringSvc,
		resultSvc:  resultSvc,
	}
}

func (c *ExamController) RegisterRoutes(router *gin.RouterGroup) {
	exams := router.Group("/exams")
	exams.GET("/current", c.GetCurrentExam)
	exams.POST("", c.StartNewExam)
	exams.POST("/participation", c.ParticipateExam)
	exams.POST("/continue", c.ContinueExam)
	exams.POST("/skills/submit", c.SubmitSkill)
	exams.POST("/speaking/submit", c.SubmitSpeakingSkill)
	exams.GET("/speaking/current", c.GetCurrentSpeakingQuestion)
	exams.GET("/:exam_id/score", c.GetScoreOfExam)
	exams.GET("/:exam_id/results/:skill_id", c.GetResultOfExam)
}

// ownerID extracts the explicit owner parameter. Identity itself is handled
// by the outer platform; the engine only ever sees the resolved id.
func ownerID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("owner_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "owner_id is required",
			Error:   "validation",
		})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "invalid owner_id format",
			Error:   "validation",
		})
		return 0, false
	}
	return uint(val), true
}

// GetCurrentExam godoc
// @Summary Get the owner's current attempt
// @Description Returns the live attempt with its skill statuses and the currently active skill.
// @Tags Exams
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Success 200 {object} dto.Envelope{data=dto.CurrentExamDTO}
// @Router /exams/current [get]
func (c *ExamController) GetCurrentExam(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	current, err := c.sessionSvc.GetCurrentExam(owner)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "current exam", current)
}

// StartNewExam godoc
// @Summary Start a fresh attempt
// @Description Creates the attempt, four skill statuses and one assigned question per content level atomically.
// @Tags Exams
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Success 200 {object} dto.Envelope{data=dto.CurrentExamDTO}
// @Router /exams [post]
func (c *ExamController) StartNewExam(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	created, err := c.sessionSvc.StartNewExam(owner)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "exam created", created)
}

// ParticipateExam godoc
// @Summary Enter the exam
// @Description Idempotent entry point: returns the live attempt when one exists, starts a new one otherwise.
// @Tags Exams
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Success 200 {object} dto.Envelope{data=dto.CurrentExamDTO}
// @Router /exams/participation [post]
func (c *ExamController) ParticipateExam(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	current, err := c.sessionSvc.ParticipateExam(owner)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "participating", current)
}

// ContinueExam godoc
// @Summary Resume the active skill
// @Description Activates the current skill when still NOT_STARTED and returns its question payload (no correctness data).
// @Tags Exams
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Success 200 {object} dto.Envelope{data=dto.SkillPayloadDTO}
// @Router /exams/continue [post]
func (c *ExamController) ContinueExam(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	payload, err := c.sessionSvc.ContinueExam(owner)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "continue exam", payload)
}

// SubmitSkill godoc
// @Summary Submit a full skill
// @Description Scores listening/reading against stored answers; persists writing/speaking for external grading.
// @Tags Exams
// @Accept json
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Param submission body dto.SubmitSkillRequest true "Skill submission"
// @Success 200 {object} dto.Envelope{data=dto.SubmitSkillResultDTO}
// @Router /exams/skills/submit [post]
func (c *ExamController) SubmitSkill(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitSkill: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "invalid request body",
			Error:   "validation",
		})
		return
	}
	result, err := c.scoringSvc.SubmitSkill(owner, req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "skill submitted", result)
}

// SubmitSpeakingSkill godoc
// @Summary Submit one speaking answer
// @Description Accepts a single speaking answer for one level; each assigned question at most once.
// @Tags Exams
// @Accept json
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Param submission body dto.SubmitSpeakingRequest true "Speaking submission"
// @Success 200 {object} dto.Envelope{data=dto.SpeakingSubmissionDTO}
// @Router /exams/speaking/submit [post]
func (c *ExamController) SubmitSpeakingSkill(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitSpeakingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitSpeakingSkill: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "invalid request body",
			Error:   "validation",
		})
		return
	}
	result, err := c.scoringSvc.SubmitSpeakingSkill(owner, req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "speaking answer submitted", result)
}

// GetCurrentSpeakingQuestion godoc
// @Summary Get the next unanswered speaking question
// @Tags Exams
// @Produce json
// @Param owner_id query int true "Owner ID"
// @Success 200 {object} dto.Envelope{data=dto.SpeakingQuestionDTO}
// @Router /exams/speaking/current [get]
func (c *ExamController) GetCurrentSpeakingQuestion(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	question, err := c.scoringSvc.GetCurrentSpeakingQuestion(owner)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "current speaking question", question)
}

// GetScoreOfExam godoc
// @Summary Get the scoring summary of an attempt
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.Envelope{data=dto.ExamScoreDTO}
// @Router /exams/{exam_id}/score [get]
func (c *ExamController) GetScoreOfExam(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "invalid exam id format",
			Error:   "validation",
		})
		return
	}
	score, err := c.resultSvc.GetScoreOfExam(uint(examID))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "exam score", score)
}

// GetResultOfExam godoc
// @Summary Get the per-item review of one skill
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param skill_id path string true "Skill ID" Enums(listening, reading, writing, speaking)
// @Success 200 {object} dto.Envelope{data=[]dto.SkillResultItemDTO}
// @Router /exams/{exam_id}/results/{skill_id} [get]
func (c *ExamController) GetResultOfExam(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "invalid exam id format",
			Error:   "validation",
		})
		return
	}
	items, err := c.resultSvc.GetResultOfExam(uint(examID), ctx.Param("skill_id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	respondOK(ctx, "exam results", items)
}
