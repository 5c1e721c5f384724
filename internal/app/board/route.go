package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards")
	{
		boards.GET("", handler.ListBoards)
		boards.POST("", handler.CreateBoard)
		boards.GET("/new", handler.GetSaveForm)
		boards.GET("/:id", handler.GetBoard)
		boards.GET("/:id/edit", handler.GetUpdateForm)
		boards.PUT("/:id", handler.UpdateBoard)
		boards.DELETE("/:id", handler.DeleteBoard)
	}
}
