package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/exetrack/internal/error_values"
	"github.com/limbo/exetrack/internal/service"
	"github.com/limbo/exetrack/pkg/httputil"
)

// dateLayout is the human-readable form used in responses, e.g. "Mon Jan 01 2024"
const dateLayout = "Mon Jan 02 2006"

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AddExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type GetLogsResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
}

const landingPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Exercise Tracker</title></head>
<body>
<h1>Exercise Tracker</h1>
<form action="/api/users" method="post">
<h3>Create a new user</h3>
<input name="username" placeholder="username"><input type="submit" value="Submit">
</form>
<p>POST to /api/users/:id/exercises to log an exercise,
GET /api/users/:id/logs to read it back.</p>
</body>
</html>`

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(landingPage))
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	users, err := s.userService.List(ctx)
	if err != nil {
		logger.Error("listing users error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing users")
		return
	}
	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, UserResponse{ID: user.ID.String(), Username: user.Username})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("users listed")
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	defer r.Body.Close()
	if err := r.ParseForm(); err != nil {
		logger.Error("creating user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	// Missing field arrives as the empty string and fails validation
	user, err := s.userService.Create(ctx, &service.CreateUserRequest{
		Username: r.PostFormValue("username"),
	})
	if err != nil {
		var validationErr *errorvalues.ValidationError
		if errors.As(err, &validationErr) {
			logger.Error("creating user error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, validationErr.Messages...)
			return
		}
		logger.Error("creating user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while creating user")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
	logger.Info("user created")
}

func (s *Server) AddExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("logging exercise error: invalid user id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value")
		return
	}
	req, err := parseAddExerciseRequest(r)
	if err != nil {
		logger.Error("logging exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("logging exercise error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("logging exercise error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while searching for user")
		return
	}
	exercise, err := s.exercisesService.Add(ctx, uid, req)
	if err != nil {
		var validationErr *errorvalues.ValidationError
		if errors.As(err, &validationErr) {
			logger.Error("logging exercise error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, validationErr.Messages...)
			return
		}
		logger.Error("logging exercise error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while logging exercise")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AddExerciseResponse{
		ID:          uid.String(),
		Username:    user.Username,
		Date:        exercise.Date.Format(dateLayout),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	})
	logger.Info("exercise logged")
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("getting logs error: invalid user id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value")
		return
	}
	query := r.URL.Query()
	var logQuery service.LogQuery
	var fromSupplied, toSupplied bool
	if raw := query.Get("from"); raw != "" {
		from, err := service.ParseDate(raw)
		if err != nil {
			logger.Error("getting logs error: invalid from date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be a valid calendar date")
			return
		}
		logQuery.From = from
		fromSupplied = true
	}
	if raw := query.Get("to"); raw != "" {
		to, err := service.ParseDate(raw)
		if err != nil {
			logger.Error("getting logs error: invalid to date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must be a valid calendar date")
			return
		}
		logQuery.To = to
		toSupplied = true
	}
	// Absent or invalid limit means unbounded, never passed through raw
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		logQuery.Limit = limit
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("getting logs error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("getting logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while searching for user")
		return
	}
	exerciseLog, err := s.exercisesService.GetUserLog(ctx, uid, logQuery)
	if err != nil {
		logger.Error("getting logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting exercise log")
		return
	}
	entries := make([]LogEntry, 0, len(exerciseLog.Exercises))
	for _, exercise := range exerciseLog.Exercises {
		entries = append(entries, LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(dateLayout),
		})
	}
	resp := GetLogsResponse{
		ID:       uid.String(),
		Username: user.Username,
		Count:    exerciseLog.Count,
		Log:      entries,
	}
	if fromSupplied {
		resp.From = logQuery.From.Format(dateLayout)
	}
	if toSupplied {
		resp.To = logQuery.To.Format(dateLayout)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("exercise log provided")
}

func parseAddExerciseRequest(r *http.Request) (*service.AddExerciseRequest, error) {
	defer r.Body.Close()
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Date        string `json:"date"`
		}
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &service.AddExerciseRequest{
			Description: body.Description,
			Duration:    body.Duration,
			Date:        body.Date,
		}, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	// Absent or non-numeric duration is coerced to 0 and rejected by validation
	duration, _ := strconv.Atoi(r.PostFormValue("duration"))
	return &service.AddExerciseRequest{
		Description: r.PostFormValue("description"),
		Duration:    duration,
		Date:        r.PostFormValue("date"),
	}, nil
}
