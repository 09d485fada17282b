package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route to its handler. No handler depends on another:
// the router is the only place the components meet.
func NewRouter(auth *AuthHandler, chats *ChatHandler, advice *AdviceHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive", "service": "mamta-backend"})
	})

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	api := r.Group("/api")
	api.POST("/generate", advice.Generate)
	api.GET("/chats", chats.List)
	api.POST("/chats", chats.Create)
	api.GET("/chats/:id", chats.Get)
	api.PUT("/chats/:id", chats.Update)
	api.DELETE("/chats/:id", chats.Delete)

	return r
}
