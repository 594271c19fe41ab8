package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	supportdomain "github.com/meridianmobile/careline/internal/support/domain"
)

func (s *Server) ListSupportTickets(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	openOnly := parseBoolDefault(c.Query("open_only"), false)
	resp, err := s.supportSvc.List(c.Request.Context(), id, openOnly)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type createTicketRequest struct {
	SubscriptionID *int64 `json:"subscription_id"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
}

func (s *Server) CreateSupportTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.supportSvc.Create(c.Request.Context(), supportdomain.CreateTicketRequest{
		CustomerID:     id,
		SubscriptionID: req.SubscriptionID,
		Category:       strings.TrimSpace(req.Category),
		Priority:       strings.TrimSpace(req.Priority),
		Subject:        strings.TrimSpace(req.Subject),
		Description:    strings.TrimSpace(req.Description),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
