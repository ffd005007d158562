package handlers

import "net/http"

// NewRouter wires all API routes onto a mux
func NewRouter(
	middleware *Middleware,
	contentHandler *ContentHandler,
	quizHandler *QuizHandler,
	authHandler *AuthHandler,
	progressHandler *ProgressHandler,
	parentHandler *ParentHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public content and quiz routes
	mux.HandleFunc("GET /api/content/{category}", contentHandler.Items)
	mux.HandleFunc("GET /api/lessons/{category}/{item}", contentHandler.Lesson)
	mux.HandleFunc("GET /api/quiz/{category}", quizHandler.ForCategory)
	mux.HandleFunc("GET /api/quiz/{category}/{item}", quizHandler.ForItem)

	// Authentication
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/child/login", authHandler.ChildLogin)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))

	// Progress and activity
	mux.HandleFunc("POST /api/progress/lesson", middleware.RequireAuth(progressHandler.CompleteLesson))
	mux.HandleFunc("POST /api/progress/quiz", middleware.RequireAuth(progressHandler.CompleteQuiz))
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.Progress))
	mux.HandleFunc("GET /api/activities", middleware.RequireAuth(progressHandler.Activities))

	// Parent dashboard
	mux.HandleFunc("GET /api/parent/children", middleware.RequireParent(parentHandler.Children))
	mux.HandleFunc("POST /api/parent/children", middleware.RequireParent(parentHandler.CreateChild))
	mux.HandleFunc("GET /api/parent/children/{id}/summary", middleware.RequireParent(parentHandler.ChildSummary))
	mux.HandleFunc("POST /api/parent/children/{id}/report", middleware.RequireParent(parentHandler.SendReport))

	return mux
}
