package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards")
	{
		boards.POST("/:id/comments", handler.CreateComment)
		boards.GET("/:id/comments", handler.GetCommentsByBoardID)
	}
}
