package httpapi

import (
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

type authResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

type verifyResponse struct {
	Success bool              `json:"success"`
	User    models.PublicUser `json:"user"`
}

type ideaResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Analysis  *models.IdeaAnalysis `json:"analysis"`
	Timestamp string               `json:"timestamp"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ideaRequest struct {
	Message string `json:"message"`
}

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"
