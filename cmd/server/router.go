package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashgen/internal/api"
	apiMiddleware "github.com/phrazzld/flashgen/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.Server.CORSAllowedOrigin))

	handler := api.NewGenerationHandler(app.service, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/api", func(r chi.Router) {
			r.Get("/test-ai", handler.TestAI)
			r.Post("/flashcards/generate", handler.GenerateFlashcards)
			r.Post("/study-plan", handler.GenerateStudyPlan)
			r.Post("/study-tips", handler.GenerateStudyTips)
			r.Post("/analyze-progress", handler.AnalyzeProgress)
			r.Post("/quiz/generate", handler.GenerateQuiz)
		})

		// Paths used by existing clients.
		r.Get("/test-ai", handler.TestAI)
		r.Post("/generate-flashcards", handler.GenerateFlashcards)
		r.Post("/generate-study-plan", handler.GenerateStudyPlan)
		r.Post("/get-study-tips", handler.GenerateStudyTips)
		r.Post("/analyze-progress", handler.AnalyzeProgress)
		r.Post("/generate-quiz", handler.GenerateQuiz)
	})

	return r
}
