package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type UVRoutes interface {
	GetLocations(w http.ResponseWriter, r *http.Request)
	GetDisplay(w http.ResponseWriter, r *http.Request)
	SelectLocation(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
}

type QuizRoutes interface {
	GetState(w http.ResponseWriter, r *http.Request)
	SelectAnswer(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Retake(w http.ResponseWriter, r *http.Request)
}

type ReminderRoutes interface {
	SetReminder(w http.ResponseWriter, r *http.Request)
	GetReminder(w http.ResponseWriter, r *http.Request)
}

type DashboardRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetClock(w http.ResponseWriter, r *http.Request)
	GetSpaceWeather(w http.ResponseWriter, r *http.Request)
	Metrics(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	uvHandler        UVRoutes
	quizHandler      QuizRoutes
	reminderHandler  ReminderRoutes
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	uvHandler UVRoutes,
	quizHandler QuizRoutes,
	reminderHandler ReminderRoutes,
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		uvHandler:        uvHandler,
		quizHandler:      quizHandler,
		reminderHandler:  reminderHandler,
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
	r.router.HandleFunc("/metrics", r.dashboardHandler.Metrics).Methods("GET")
	r.router.HandleFunc("/v1/clock", r.dashboardHandler.GetClock).Methods("GET")
	r.router.HandleFunc("/v1/space-weather", r.dashboardHandler.GetSpaceWeather).Methods("GET")

	r.router.HandleFunc("/v1/locations", r.uvHandler.GetLocations).Methods("GET")
	r.router.HandleFunc("/v1/uv", r.uvHandler.GetDisplay).Methods("GET")
	// expects ?key={location key}
	r.router.HandleFunc("/v1/uv/location", r.uvHandler.SelectLocation).Methods("POST")
	r.router.HandleFunc("/v1/uv/chart", r.uvHandler.GetChart).Methods("GET")

	r.router.HandleFunc("/v1/quiz", r.quizHandler.GetState).Methods("GET")
	r.router.HandleFunc("/v1/quiz/answers", r.quizHandler.SelectAnswer).Methods("POST")
	r.router.HandleFunc("/v1/quiz/submit", r.quizHandler.Submit).Methods("POST")
	r.router.HandleFunc("/v1/quiz/retake", r.quizHandler.Retake).Methods("POST")

	r.router.HandleFunc("/v1/reminders", r.reminderHandler.SetReminder).Methods("POST")
	r.router.HandleFunc("/v1/reminders", r.reminderHandler.GetReminder).Methods("GET")
}
