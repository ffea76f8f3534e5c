package questions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/respond"
)

// Handler wires the question-generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/questions", h.generate)
}

type generateRequest struct {
	UserID string `json:"userId"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "userId is required")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "userId is required")
		return
	}
	c.Set("userId", req.UserID)

	result, err := h.Svc.Generate(c.Request.Context(), req.UserID)
	if err != nil {
		var retrieval *RetrievalError
		switch {
		case errors.As(err, &retrieval):
			respond.Error(c, http.StatusNotFound, "Failed to retrieve parsed data: "+retrieval.Err.Error())
		case errors.Is(err, ErrNoSkills):
			respond.Error(c, http.StatusBadRequest, "No skills found in parsed data")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error: "+err.Error())
		}
		return
	}

	respond.OK(c, result)
}
