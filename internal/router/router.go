package router

import (
	"blogapp/internal/app/board"
	"blogapp/internal/app/comment"
	"blogapp/internal/app/health"
	"blogapp/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(logger *zap.Logger, allowedOrigins []string, identity gin.HandlerFunc) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(allowedOrigins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	api.Use(identity)

	return &Router{Engine: engine, api: api}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.api, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.api, handler)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.api, handler)
}
