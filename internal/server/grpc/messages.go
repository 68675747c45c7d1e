package grpc

import "github.com/dmitrijs2005/foundrmate/internal/server/models"

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthReply carries ExpiresAt as RFC 3339 in UTC.
type AuthReply struct {
	Token     string            `json:"token"`
	ExpiresAt string            `json:"expiresAt"`
	User      models.PublicUser `json:"user"`
}

type VerifyRequest struct{}

type VerifyReply struct {
	User models.PublicUser `json:"user"`
}

type SubmitIdeaRequest struct {
	Message string `json:"message"`
}

type SubmitIdeaReply struct {
	Analysis  *models.IdeaAnalysis `json:"analysis"`
	Timestamp string               `json:"timestamp"`
}
