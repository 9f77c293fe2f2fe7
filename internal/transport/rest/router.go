package rest

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/excel"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/handler"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	QuestionService   *service.QuestionService
	AttemptService    *service.AttemptService
	SessionService    *service.SessionService
	AnalyticsService  *service.AnalyticsService
	GenerationService *service.GenerationService
	UsageService      *service.UsageService
	Importer          *excel.Importer
	WSHub             *ws.Hub
	CORSOrigins       []string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	attemptHandler := handler.NewAttemptHandler(c.AttemptService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)
	generationHandler := handler.NewGenerationHandler(c.GenerationService, c.Importer)
	usageHandler := handler.NewUsageHandler(c.UsageService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// Logging outermost, then CORS so preflights short-circuit before auth
	r.Use(requestLogging, corsMiddleware(c.CORSOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket event feed (token in query param)
	v1.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	// Staff routes (any authenticated staff member)
	staff := v1.NewRoute().Subrouter()
	staff.Use(authMW.RequireAuth)

	staff.HandleFunc("/questions", questionHandler.ListPublished).Methods("GET", "OPTIONS")
	staff.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	staff.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")
	staff.HandleFunc("/questions/{id}", questionHandler.Update).Methods("PUT", "OPTIONS")
	staff.HandleFunc("/questions/{id}", questionHandler.Delete).Methods("DELETE", "OPTIONS")
	staff.HandleFunc("/questions/{id}/options", questionHandler.ReplaceOptions).Methods("PUT", "OPTIONS")
	staff.HandleFunc("/questions/{id}/submit", questionHandler.Submit).Methods("POST", "OPTIONS")
	staff.HandleFunc("/questions/{id}/analytics", analyticsHandler.QuestionStats).Methods("GET", "OPTIONS")
	staff.HandleFunc("/questions/{id}/usages", usageHandler.ListForQuestion).Methods("GET", "OPTIONS")

	staff.HandleFunc("/attempts", attemptHandler.Record).Methods("POST", "OPTIONS")
	staff.HandleFunc("/attempts/{id}", attemptHandler.Get).Methods("GET", "OPTIONS")

	staff.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	staff.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	staff.HandleFunc("/sessions/{id}/complete", sessionHandler.Complete).Methods("POST", "OPTIONS")
	staff.HandleFunc("/sessions/{id}/attempts", attemptHandler.ListBySession).Methods("GET", "OPTIONS")

	staff.HandleFunc("/me/attempts", attemptHandler.ListMine).Methods("GET", "OPTIONS")
	staff.HandleFunc("/me/sessions", sessionHandler.ListMine).Methods("GET", "OPTIONS")
	staff.HandleFunc("/me/stats", analyticsHandler.MyStats).Methods("GET", "OPTIONS")

	staff.HandleFunc("/challenge/status", analyticsHandler.ChallengeStatus).Methods("GET", "OPTIONS")
	staff.HandleFunc("/challenge/questions", analyticsHandler.ChallengeQuestions).Methods("GET", "OPTIONS")

	staff.HandleFunc("/leaderboards/{quizType}", analyticsHandler.Leaderboard).Methods("GET", "OPTIONS")
	staff.HandleFunc("/leaderboards/{quizType}/me", analyticsHandler.MyRank).Methods("GET", "OPTIONS")

	staff.HandleFunc("/usages", usageHandler.ListForContext).Methods("GET", "OPTIONS")

	// Reviewer routes (review desk, generation, import, curriculum links)
	reviewer := v1.NewRoute().Subrouter()
	reviewer.Use(authMW.RequireAuth, authMW.RequireRole(model.RoleReviewer))

	reviewer.HandleFunc("/review/questions", questionHandler.ListForReview).Methods("GET", "OPTIONS")
	reviewer.HandleFunc("/questions/{id}/approve", questionHandler.Approve).Methods("POST", "OPTIONS")
	reviewer.HandleFunc("/questions/{id}/reject", questionHandler.Reject).Methods("POST", "OPTIONS")
	reviewer.HandleFunc("/questions/{id}/archive", questionHandler.Archive).Methods("POST", "OPTIONS")

	reviewer.HandleFunc("/generation", generationHandler.Generate).Methods("POST", "OPTIONS")
	reviewer.HandleFunc("/generation/drafts", generationHandler.SaveDrafts).Methods("POST", "OPTIONS")
	reviewer.HandleFunc("/import", generationHandler.Import).Methods("POST", "OPTIONS")

	reviewer.HandleFunc("/usages", usageHandler.Attach).Methods("POST", "OPTIONS")
	reviewer.HandleFunc("/usages/{id}", usageHandler.Detach).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(allowed []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && originAllowed(allowed, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			} else if originAllowed(allowed, "*") {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// requestLogging logs one line per request with status and duration
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond).String(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working through the logging wrapper
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}
