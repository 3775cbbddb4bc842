package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"eduvibe/backend/config"
	"eduvibe/backend/controllers"
	"eduvibe/backend/middleware"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

func SetupRoutes(app *fiber.App, st store.Store, cfg *config.Config) {
	authRequired := middleware.AuthRequired(cfg)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "EduVibe API",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authRequired, authController.Me)

	// Courses routes; the catalog is public, enrollment state is not.
	coursesController := controllers.NewCoursesController(st, cfg)
	app.Get("/api/courses", coursesController.ListCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Post("/api/courses/:id/enroll", authRequired, coursesController.Enroll)
	app.Get("/api/courses/:id/progress", authRequired, coursesController.GetProgress)
	app.Put("/api/courses/:id/progress", authRequired, coursesController.UpdateProgress)

	// Quiz routes
	quizController := controllers.NewQuizController(st, cfg)
	app.Post("/api/quiz/submit", authRequired, quizController.Submit)
	app.Get("/api/quiz/history", authRequired, quizController.History)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(st, cfg)
	app.Get("/api/dashboard", authRequired, dashboardController.GetDashboard)
	app.Get("/api/dashboard/stats", authRequired, dashboardController.GetStats)

	// Contact routes
	contactController := controllers.NewContactController(st, cfg)
	app.Post("/api/contact", contactController.Create)
	app.Get("/api/contact", contactController.List)

	// Catch-all 404
	app.Use(func(c *fiber.Ctx) error {
		return utils.Fail(c, fiber.StatusNotFound, "Route not found.")
	})
}
