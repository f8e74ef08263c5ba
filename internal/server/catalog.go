package server

import (
	"github.com/gin-gonic/gin"
	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
)

func (s *Server) ListTools(c *gin.Context) {
	tools, err := s.catalogSvc.ListTools(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if tools == nil {
		tools = []catalogdomain.Tool{}
	}
	respondOK(c, tools)
}

func (s *Server) ListComponents(c *gin.Context) {
	components, err := s.catalogSvc.ListComponents(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if components == nil {
		components = []catalogdomain.Component{}
	}
	respondOK(c, components)
}
