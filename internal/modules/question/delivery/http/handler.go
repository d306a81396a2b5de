package handler

import (
	"net/http"

	"anoa.com/askify/internal/modules/question/dto"
	question "anoa.com/askify/internal/modules/question/service"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	service question.QuestionService
}

func NewQuestionHandler(service question.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	var filter dto.QuestionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	questions, err := h.service.ListQuestions(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	res, err := h.service.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ResponseError(c, response.BindingError(err))
		return
	}

	questions, err := h.service.SearchQuestions(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": questions})
}

func (h *QuestionHandler) GetSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.GetSubjects()})
}

func (h *QuestionHandler) GetTags(c *gin.Context) {
	tags, err := h.service.GetTags(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tags})
}
