package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	knowledgedomain "github.com/meridianmobile/careline/internal/knowledge/domain"
)

type searchKnowledgeRequest struct {
	Query   string            `json:"query"`
	TopK    int               `json:"top_k"`
	Filters map[string]string `json:"filters"`
}

func (s *Server) SearchKnowledge(c *gin.Context) {
	var req searchKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.knowledgeSvc.Search(c.Request.Context(), knowledgedomain.SearchRequest{
		Query:   req.Query,
		TopK:    req.TopK,
		Filters: req.Filters,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
