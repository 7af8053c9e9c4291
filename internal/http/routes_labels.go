package http

import (
	"github.com/gin-gonic/gin"

	"github.com/labelforge/label-service/internal/service"
)

// LabelRoutes handles label-related route registration.
type LabelRoutes struct {
	handler *Handler
}

// NewLabelRoutes creates a new LabelRoutes instance.
func NewLabelRoutes(composer service.LabelComposer, history service.RenderHistoryService, opts ...HandlerOption) *LabelRoutes {
	return &LabelRoutes{
		handler: NewHandler(composer, history, opts...),
	}
}

// RegisterPublicRoutes registers label routes (when auth is disabled).
func (r *LabelRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/labels", r.handler.GenerateLabel)
	rg.GET("/labels/history", r.handler.ListRenderHistory)
}

// RegisterProtectedRoutes registers label routes behind authentication.
func (r *LabelRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/labels", r.handler.GenerateLabel)
	rg.GET("/labels/history", r.handler.ListRenderHistory)
}

// GetHandler returns the underlying label handler.
func (r *LabelRoutes) GetHandler() *Handler {
	return r.handler
}
