package server

import (
	"fitness-server/auth"
	"fitness-server/confs"
	"fitness-server/db"
	"fitness-server/handlers"
	httpHandler "fitness-server/handlers/http"
	"fitness-server/repositories"
	"fitness-server/services"
	"fitness-server/usecases"
	"fitness-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	s := &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Start() {
	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}

// Engine exposes the configured router; tests drive it directly.
func (s *Server) Engine() *gin.Engine {
	return s.app
}

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	workoutRepo := repositories.NewWorkoutPgRepository(s.db)
	mealRepo := repositories.NewMealPgRepository(s.db)
	weightRepo := repositories.NewWeightPgRepository(s.db)
	feedbackRepo := repositories.NewFeedbackPgRepository(s.db)

	// Token manager and use cases
	tokens := auth.NewTokenManager([]byte(s.cfg.JWTSecret), s.cfg.TokenTTL)
	userUseCase := usecases.NewUserUseCase(userRepo, tokens, s.cfg.BcryptCost)
	trackerUseCase := usecases.NewTrackerUseCase(workoutRepo, mealRepo, weightRepo, feedbackRepo)

	// WebSocket manager and activity feed
	manager := ws.NewManager()
	feed := services.NewActivityFeed(manager, 50)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUseCase, feed)
	workoutHandler := httpHandler.NewWorkoutHandler(trackerUseCase, feed)
	mealHandler := httpHandler.NewMealHandler(trackerUseCase, feed)
	weightHandler := httpHandler.NewWeightHandler(trackerUseCase, feed)
	feedbackHandler := httpHandler.NewFeedbackHandler(trackerUseCase, feed)
	activityHandler := handlers.NewActivityHandler(feed)
	wsHandler := handlers.NewWSHandler(manager, tokens, userRepo)

	authMw := httpHandler.NewAuthMiddleware(tokens, userRepo)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/profile", authMw.RequireAuth(), authHandler.Profile)
			authGroup.PUT("/updateUser/:id", authMw.RequireAuth(), authHandler.UpdateUser)
			authGroup.DELETE("/deleteUser/:id", authMw.RequireAuth(), authHandler.DeleteUser)
		}

		// Workout routes
		workouts := api.Group("/workouts", authMw.RequireAuth())
		{
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.PUT("/:id", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		// Meal routes
		meals := api.Group("/meals", authMw.RequireAuth())
		{
			meals.POST("", mealHandler.CreateMeal)
			meals.GET("", mealHandler.ListMeals)
			meals.GET("/:id", mealHandler.GetMeal)
			meals.PUT("/:id", mealHandler.UpdateMeal)
			meals.DELETE("/:id", mealHandler.DeleteMeal)
		}

		// Weight routes
		weights := api.Group("/weights", authMw.RequireAuth())
		{
			weights.POST("", weightHandler.CreateWeight)
			weights.GET("", weightHandler.ListWeights)
			weights.GET("/:id", weightHandler.GetWeight)
			weights.PUT("/:id", weightHandler.UpdateWeight)
			weights.DELETE("/:id", weightHandler.DeleteWeight)
		}

		// Feedback routes
		feedback := api.Group("/feedback", authMw.RequireAuth())
		{
			feedback.POST("", feedbackHandler.CreateFeedback)
			feedback.GET("", feedbackHandler.ListFeedback)
			feedback.GET("/:id", feedbackHandler.GetFeedback)
			feedback.PUT("/:id", feedbackHandler.UpdateFeedback)
			feedback.DELETE("/:id", feedbackHandler.DeleteFeedback)
		}

		// Activity feed endpoints
		activity := api.Group("/activity", authMw.RequireAuth())
		{
			activity.GET("/recent", activityHandler.Recent)
			activity.GET("/stats", activityHandler.Stats)
		}

		api.GET("/feed/connected", authMw.RequireAuth(), wsHandler.GetConnectedUsers)
	}

	s.app.GET("/ws/feed", wsHandler.HandleFeedWS)
}
