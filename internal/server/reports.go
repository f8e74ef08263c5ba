package server

import "github.com/gin-gonic/gin"

func (s *Server) AdminReports(c *gin.Context) {
	report, err := s.reportsSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondOK(c, report)
}
