package httpapi

import (
	"encoding/json"

	"taskdash/internal/infrastructure/persistence/mapper"
)

// Endpoints, relative to the configured base URL
const (
	PathTasks     = "/api/task"
	PathDashboard = "/api/task/dashboard"
	PathIsAuth    = "/api/auth/is-auth"
	PathLogin     = "/api/auth/login"
	PathRegister  = "/api/auth/register"
	PathLogout    = "/api/auth/logout"
	PathUserData  = "/api/user/data"
)

// Response is the envelope every store reply carries
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// tasksResponse is the fetch-all reply. Older stores send the list under
// "task" instead of "tasks".
type tasksResponse struct {
	Tasks  []mapper.TaskWire `json:"tasks"`
	Legacy json.RawMessage   `json:"task"`
}

// taskResponse is the create/update reply
type taskResponse struct {
	Task *mapper.TaskWire `json:"task"`
}

// dashboardResponse is the aggregation reply
type dashboardResponse struct {
	Summary *mapper.SummaryWire `json:"summary"`
}

// userResponse is the user data reply
type userResponse struct {
	UserData *mapper.UserWire `json:"userData"`
}

// LoginPayload is the login request body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload is the registration request body
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
