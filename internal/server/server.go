package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/askify/internal/bootstrap"
	"anoa.com/askify/internal/config"
	"anoa.com/askify/internal/middleware"
	"anoa.com/askify/internal/worker"
	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/ratelimiter"

	authHttp "anoa.com/askify/internal/modules/auth/delivery/http"
	authService "anoa.com/askify/internal/modules/auth/service"

	errorPageHttp "anoa.com/askify/internal/modules/errorpage/delivery/http"

	leaderboardHttp "anoa.com/askify/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "anoa.com/askify/internal/modules/leaderboard/repository"
	leaderboardService "anoa.com/askify/internal/modules/leaderboard/service"

	notiHttp "anoa.com/askify/internal/modules/notification/delivery/http"
	notifRepo "anoa.com/askify/internal/modules/notification/repository"
	notifService "anoa.com/askify/internal/modules/notification/service"

	questionHttp "anoa.com/askify/internal/modules/question/delivery/http"
	questionRepo "anoa.com/askify/internal/modules/question/repository"
	questionService "anoa.com/askify/internal/modules/question/service"

	searchService "anoa.com/askify/internal/modules/search/service"

	statHttp "anoa.com/askify/internal/modules/stat/delivery/http"
	statService "anoa.com/askify/internal/modules/stat/service"

	themeHttp "anoa.com/askify/internal/modules/theme/delivery/http"
	themeService "anoa.com/askify/internal/modules/theme/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg       *config.Config
	engine    *gin.Engine
	deps      *Dependencies
	scheduler *worker.Scheduler
}

type repositories struct {
	questions     questionRepo.QuestionRepository
	notifications notifRepo.NotificationRepository
	leaderboard   leaderboardRepo.LeaderboardRepository
}

func newRepositories(deps *Dependencies) repositories {
	if deps.DB != nil {
		return repositories{
			questions:     questionRepo.NewQuestionRepository(deps.DB),
			notifications: notifRepo.NewNotificationRepository(deps.DB),
			leaderboard:   leaderboardRepo.NewLeaderboardRepository(deps.DB),
		}
	}
	return repositories{
		questions:     questionRepo.NewMemoryQuestionRepository(bootstrap.MockQuestions(), bootstrap.MockAnswers()),
		notifications: notifRepo.NewMemoryNotificationRepository(bootstrap.MockNotifications()),
		leaderboard:   leaderboardRepo.NewMemoryLeaderboardRepository(bootstrap.MockLeaderboard()),
	}
}

// NewServer wires every module onto deps. deps.Store must be set.
func NewServer(cfg *config.Config, deps *Dependencies) (*Server, error) {
	repos := newRepositories(deps)

	var meiliSvc searchService.MeiliSearchService
	if deps.Meili != nil {
		meiliSvc = searchService.NewMeiliSearchService(deps.Meili)
	}

	questionSvc := questionService.NewQuestionService(repos.questions, meiliSvc)
	questionHandler := questionHttp.NewQuestionHandler(questionSvc)

	notificationSvc := notifService.NewNotificationService(repos.notifications, deps.Store)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc)

	leaderboardSvc := leaderboardService.NewLeaderboardService(repos.leaderboard)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	authSvc := authService.NewAuthService(deps.Store, deps.Images, authService.Options{
		Latency:  cfg.MockLatency,
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.JWTTTL,
	})
	authHandler := authHttp.NewAuthHandler(authSvc)

	themeHandler := themeHttp.NewThemeHandler(themeService.NewThemeService(deps.Store))

	statSvc := statService.NewStatService(questionSvc, notificationSvc, leaderboardSvc)
	statHandler := statHttp.NewStatHandler(statSvc, questionSvc)

	errorPageHandler := errorPageHttp.NewErrorPageHandler()

	scheduler := worker.NewScheduler()
	if meiliSvc != nil {
		if err := scheduler.Register(worker.NewReindexJob(questionSvc, cfg.SearchReindexSpec)); err != nil {
			return nil, err
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(middleware.Recovery(!cfg.IsProduction()))
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/notifications/ws"},
	}))
	router.Use(middleware.ClientScope(cfg.IsProduction()))

	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	limiter := ratelimiter.New(deps.Redis, cfg.RateLimitAuth)

	api := router.Group("/api")

	api.GET("/home", statHandler.GetHome)

	questions := api.Group("/questions")
	{
		questions.GET("", questionHandler.GetAllQuestions)
		questions.GET("/search", questionHandler.SearchQuestions)
		questions.GET("/trending", statHandler.GetTrendingQuestions)
		questions.GET("/:id", questionHandler.GetQuestion)
	}
	api.GET("/subjects", questionHandler.GetSubjects)
	api.GET("/tags", questionHandler.GetTags)

	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.GetNotifications)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.PUT("/read-all", notificationHandler.MarkAllAsRead)
		notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
		notifications.GET("/ws", notificationHandler.HandleWebSocket)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(limiter, "login"), authHandler.Login)
		auth.POST("/register", middleware.RateLimit(limiter, "register"), authHandler.Register)
		auth.POST("/forgot-password", middleware.RateLimit(limiter, "forgot_password"), authHandler.ForgotPassword)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	// Profile routes act on the session the token belongs to.
	protected := api.Group("/profile")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("", authHandler.GetProfile)
		protected.PUT("", authHandler.UpdateProfile)
		protected.POST("/avatar", authHandler.UploadAvatar)
	}

	api.GET("/theme", themeHandler.GetTheme)
	api.POST("/theme/toggle", themeHandler.ToggleTheme)

	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

	api.GET("/errors/resolve", errorPageHandler.Resolve)
	api.GET("/errors/:code", errorPageHandler.GetPage)

	router.NoRoute(errorPageHandler.NotFound)

	return &Server{
		cfg:       cfg,
		engine:    router,
		deps:      deps,
		scheduler: scheduler,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.scheduler.Start()
	defer s.scheduler.Stop()

	if s.deps.Meili != nil {
		go func() {
			if err := s.scheduler.RunByName(ctx, worker.ReindexJobName); err != nil {
				logger.Log.Warnw("initial search reindex failed", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("🚀 Server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Client-ID", "Sec-CH-Prefers-Color-Scheme"},
		ExposeHeaders:    []string{"Content-Length", "X-Client-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
