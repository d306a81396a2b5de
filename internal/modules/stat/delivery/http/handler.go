package http

import (
	"net/http"
	"strconv"

	questionDto "anoa.com/askify/internal/modules/question/dto"
	question "anoa.com/askify/internal/modules/question/service"
	statService "anoa.com/askify/internal/modules/stat/service"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService     statService.StatService
	questionService question.QuestionService
}

func NewStatHandler(statService statService.StatService, questionService question.QuestionService) *StatHandler {
	return &StatHandler{
		statService:     statService,
		questionService: questionService,
	}
}

func (h *StatHandler) GetHome(c *gin.Context) {
	scope, err := response.GetClientID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	overview, err := h.statService.GetOverview(c.Request.Context(), scope)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": overview})
}

// GetTrendingQuestions lists hot questions, most voted first.
func (h *StatHandler) GetTrendingQuestions(c *gin.Context) {
	limit := 5
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	res, err := h.questionService.ListQuestions(c.Request.Context(), questionDto.QuestionFilter{
		SortBy:  string(question.SortVotes),
		HotOnly: true,
		Limit:   limit,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res.Data})
}
