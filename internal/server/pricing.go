package server

import (
	"github.com/gin-gonic/gin"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
)

// Quote prices a usage request without recording anything. Clients use this
// for the cost preview before confirming payment.
func (s *Server) Quote(c *gin.Context) {
	var req pricingdomain.UsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	breakdown, err := s.pricingSvc.Quote(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, breakdown)
}
