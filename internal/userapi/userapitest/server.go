// Package userapitest provides an in-process fake of the fitness backend for
// tests.
package userapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

// Server is a fake backend holding calorie goals and workout counts in memory.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	goals    map[string]int
	workouts map[string]int
	failWith int
	requests []string
}

// NewServer starts a fake backend. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		goals:    make(map[string]int),
		workouts: make(map[string]int),
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/auth/user/{userId}", s.handleGetUser).Methods(http.MethodGet)
	r.HandleFunc("/auth/user/{userId}", s.handlePutUser).Methods(http.MethodPut)
	r.HandleFunc("/workouts/user/{userId}", s.handleWorkouts).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	return s
}

// SetGoal stores a calorie goal for the user.
func (s *Server) SetGoal(userID string, goal int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[userID] = goal
}

// Goal returns the stored calorie goal for the user.
func (s *Server) Goal(userID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[userID]
	return g, ok
}

// SetWorkouts sets how many workouts the user has logged.
func (s *Server) SetWorkouts(userID string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[userID] = n
}

// FailWith makes every following request answer with status. Zero restores
// normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns "METHOD path" for every request received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		status := s.failWith
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	resp := map[string]any{"id": userID}
	if g, ok := s.Goal(userID); ok {
		resp["calorie_goal"] = g
	}
	writeJSON(w, resp)
}

func (s *Server) handlePutUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var body struct {
		CalorieGoal *int `json:"calorie_goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CalorieGoal == nil {
		http.Error(w, "calorie_goal required", http.StatusUnprocessableEntity)
		return
	}

	s.SetGoal(userID, *body.CalorieGoal)
	writeJSON(w, map[string]any{"id": userID, "calorie_goal": *body.CalorieGoal})
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	s.mu.Lock()
	n := s.workouts[userID]
	s.mu.Unlock()

	list := make([]map[string]int, n)
	for i := range list {
		list[i] = map[string]int{"id": i + 1}
	}
	writeJSON(w, list)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
