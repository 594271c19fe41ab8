package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	subscriptiondomain "github.com/meridianmobile/careline/internal/subscription/domain"
)

func (s *Server) GetSubscriptionByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.subscriptionSvc.GetDetail(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateSubscriptionRequest struct {
	Status         *string `json:"status"`
	ServiceStatus  *string `json:"service_status"`
	EndDate        *string `json:"end_date"`
	RoamingEnabled *int    `json:"roaming_enabled"`
	AutopayEnabled *int    `json:"autopay_enabled"`
	SpeedTier      *string `json:"speed_tier"`
	DataCapGB      *int    `json:"data_cap_gb"`
}

func (s *Server) UpdateSubscription(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.subscriptionSvc.Update(c.Request.Context(), subscriptiondomain.UpdateRequest{
		SubscriptionID: id,
		Status:         req.Status,
		ServiceStatus:  req.ServiceStatus,
		EndDate:        req.EndDate,
		RoamingEnabled: req.RoamingEnabled,
		AutopayEnabled: req.AutopayEnabled,
		SpeedTier:      req.SpeedTier,
		DataCapGB:      req.DataCapGB,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDataUsage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.subscriptionSvc.GetUsage(c.Request.Context(), subscriptiondomain.UsageRequest{
		SubscriptionID: id,
		StartDate:      strings.TrimSpace(c.Query("start_date")),
		EndDate:        strings.TrimSpace(c.Query("end_date")),
		Aggregate:      parseBoolDefault(c.Query("aggregate"), false),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
