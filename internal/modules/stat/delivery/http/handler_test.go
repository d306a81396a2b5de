package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/askify/internal/bootstrap"
	leaderboardRepo "anoa.com/askify/internal/modules/leaderboard/repository"
	leaderboard "anoa.com/askify/internal/modules/leaderboard/service"
	notifRepo "anoa.com/askify/internal/modules/notification/repository"
	notification "anoa.com/askify/internal/modules/notification/service"
	questionRepo "anoa.com/askify/internal/modules/question/repository"
	question "anoa.com/askify/internal/modules/question/service"
	statService "anoa.com/askify/internal/modules/stat/service"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	questions := question.NewQuestionService(questionRepo.NewMemoryQuestionRepository(bootstrap.MockQuestions(), bootstrap.MockAnswers()), nil)
	notifications := notification.NewNotificationService(notifRepo.NewMemoryNotificationRepository(bootstrap.MockNotifications()), kvstore.NewMemoryStore())
	board := leaderboard.NewLeaderboardService(leaderboardRepo.NewMemoryLeaderboardRepository(bootstrap.MockLeaderboard()))
	h := NewStatHandler(statService.NewStatService(questions, notifications, board), questions)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Client-ID"); id != "" {
			c.Set(response.ClientIDKey, id)
		}
		c.Next()
	})
	r.GET("/home", h.GetHome)
	r.GET("/trending", h.GetTrendingQuestions)
	return r
}

func TestGetHome(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("X-Client-ID", "c1")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data statService.Overview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.Data.TotalQuestions)
	assert.Equal(t, 2, body.Data.UnreadNotifications)
	assert.Len(t, body.Data.TopContributors, 3)
}

func TestGetHome_NoClient(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetTrendingQuestions(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trending", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			ID    string `json:"id"`
			Votes int    `json:"votes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.GreaterOrEqual(t, body.Data[0].Votes, body.Data[1].Votes)
}
