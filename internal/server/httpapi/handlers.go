package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/gin-gonic/gin"
)

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Message: "FoundrMate backend running"})
}

// register handles POST /api/auth/register. A body that does not decode is
// treated as one with every field missing.
func (h *handler) register(c *gin.Context) {
	var req registerRequest
	_ = c.ShouldBindJSON(&req)

	res, err := h.users.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch common.KindOf(err) {
		case common.KindValidation, common.KindDuplicateEmail:
			c.JSON(http.StatusBadRequest, errorResponse{Error: common.MessageOf(err, "")})
		default:
			h.internal(c, "register failed", err, "Error creating user account")
		}
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   res.Token,
		User:    res.User,
	})
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBindJSON(&req)

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch common.KindOf(err) {
		case common.KindValidation:
			c.JSON(http.StatusBadRequest, errorResponse{Error: common.MessageOf(err, "")})
		case common.KindInvalidCredentials:
			c.JSON(http.StatusUnauthorized, errorResponse{Error: common.MessageOf(err, "")})
		default:
			h.internal(c, "login failed", err, "Error logging in")
		}
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}

func (h *handler) verify(c *gin.Context) {
	user, err := h.users.VerifySession(c.Request.Context(), UserID(c))
	if err != nil {
		switch common.KindOf(err) {
		case common.KindUserNotFound:
			c.JSON(http.StatusNotFound, errorResponse{Error: common.MessageOf(err, "")})
		default:
			h.internal(c, "verify failed", err, "Error verifying token")
		}
		return
	}

	c.JSON(http.StatusOK, verifyResponse{Success: true, User: *user})
}

func (h *handler) submitIdea(c *gin.Context) {
	var req ideaRequest
	_ = c.ShouldBindJSON(&req)

	analysis, err := h.ideas.Submit(c.Request.Context(), UserID(c), req.Message)
	if err != nil {
		switch common.KindOf(err) {
		case common.KindValidation:
			c.JSON(http.StatusBadRequest, errorResponse{Error: common.MessageOf(err, "")})
		default:
			h.internal(c, "idea submission failed", err, "Error processing your idea")
		}
		return
	}

	c.JSON(http.StatusOK, ideaResponse{
		Success:   true,
		Message:   "Idea received successfully",
		Analysis:  analysis,
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}

// internal logs err with the request id and answers 500 with msg.
func (h *handler) internal(c *gin.Context, logMsg string, err error, msg string) {
	h.logger.Error(c.Request.Context(), logMsg, "request_id", RequestIDFrom(c), "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}
