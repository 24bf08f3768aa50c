package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gymmanagement/gym/internal/handlers"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/internal/storage"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB          *gorm.DB
	Progress    *services.ProgressService
	Storage     *storage.MinIOClient
	CORSOrigins string
	BodyLimitMB int
	// Metrics registers the Prometheus collectors, which can only happen once per process.
	Metrics bool
}

// New builds the Fiber application with every route mounted.
func New(deps Dependencies) *fiber.App {
	bodyLimit := deps.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}

	var images handlers.ImageStore
	var storageChecker services.StorageChecker
	if deps.Storage != nil {
		images = deps.Storage
		storageChecker = deps.Storage
	}

	accessService := services.NewAccessService()
	authService := services.NewAuthService(deps.DB)
	userService := services.NewUserService(deps.DB)
	workoutService := services.NewWorkoutService(deps.DB, deps.Progress)
	eventService := services.NewEventService(deps.DB)

	authHandler := handlers.NewAuthHandler(authService)
	usersHandler := handlers.NewUsersHandler(userService, accessService)
	workoutsHandler := handlers.NewWorkoutsHandler(workoutService, deps.Progress, accessService, images)
	eventsHandler := handlers.NewEventsHandler(eventService, images)
	progressHandler := handlers.NewProgressHandler(deps.Progress, accessService)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	memberOnly := middleware.RequireRole(models.UserRoleMember)

	app := fiber.New(fiber.Config{BodyLimit: bodyLimit * 1024 * 1024})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	if deps.CORSOrigins != "" {
		app.Use(middleware.CORS(deps.CORSOrigins))
	}

	if deps.Metrics {
		prometheus := fiberprometheus.New("gym")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), deps.DB, storageChecker)
		status := fiber.StatusOK
		if result.Status == "unhealthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authMiddleware.RequireAuth, authHandler.Me)

	userRoutes := api.Group("/users", authMiddleware.RequireAuth)
	userRoutes.Get("/", middleware.AdminOnly, usersHandler.List)
	userRoutes.Get("/email/:email", usersHandler.GetByEmail)
	userRoutes.Get("/:id", usersHandler.Get)
	userRoutes.Patch("/:id", usersHandler.Update)
	userRoutes.Delete("/:id", middleware.AdminOnly, usersHandler.Delete)

	workoutRoutes := api.Group("/workouts", authMiddleware.RequireAuth)
	workoutRoutes.Post("/", middleware.AdminOnly, workoutsHandler.Create)
	workoutRoutes.Get("/", middleware.AdminOnly, workoutsHandler.List)
	workoutRoutes.Get("/my-workout", memberOnly, workoutsHandler.MyWorkouts)
	workoutRoutes.Get("/user/:userId", workoutsHandler.ListByUser)
	workoutRoutes.Get("/stats/:userId", workoutsHandler.Stats)
	workoutRoutes.Get("/users/all-progress", middleware.AdminOnly, workoutsHandler.AllProgress)
	workoutRoutes.Get("/users/:userId/progress", workoutsHandler.MemberProgress)
	workoutRoutes.Get("/:id", workoutsHandler.Get)
	workoutRoutes.Patch("/:id/toggle-completion", workoutsHandler.ToggleCompletion)
	workoutRoutes.Patch("/:id", middleware.AdminOnly, workoutsHandler.Update)
	workoutRoutes.Post("/:id/image", middleware.AdminOnly, workoutsHandler.UploadImage)
	workoutRoutes.Delete("/:id", middleware.AdminOnly, workoutsHandler.Delete)

	eventRoutes := api.Group("/events", authMiddleware.RequireAuth)
	eventRoutes.Get("/", eventsHandler.List)
	eventRoutes.Get("/:id", eventsHandler.Get)
	eventRoutes.Post("/", middleware.AdminOnly, eventsHandler.Create)
	eventRoutes.Patch("/:id", middleware.AdminOnly, eventsHandler.Update)
	eventRoutes.Post("/:id/image", middleware.AdminOnly, eventsHandler.UploadImage)
	eventRoutes.Delete("/:id", middleware.AdminOnly, eventsHandler.Delete)

	progressRoutes := api.Group("/progress", authMiddleware.RequireAuth)
	progressRoutes.Get("/", middleware.AdminOnly, progressHandler.List)
	progressRoutes.Post("/", middleware.AdminOnly, progressHandler.Record)
	progressRoutes.Get("/trainee/:traineeId", progressHandler.Latest)
	progressRoutes.Get("/:id", progressHandler.Get)
	progressRoutes.Delete("/:id", middleware.AdminOnly, progressHandler.Delete)

	return app
}
