package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/exetrack/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	exercisesService service.ExercisesServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	ExercisesService service.ExercisesServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		exercisesService: servicesOptions.ExercisesService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Get("/", s.Index)
	s.mx.Get("/api/users", s.ListUsers)
	s.mx.Post("/api/users", s.CreateUser)
	s.mx.Post("/api/users/{id}/exercises", s.AddExercise)
	s.mx.Get("/api/users/{id}/logs", s.GetLogs)
	return http.ListenAndServe(address, s.mx)
}
