package routes

import (
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/config"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/handlers"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/middleware"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg.Server.RequestsPerMinute))

	styleService := services.NewStyleService(db)
	curationService := services.NewCurationService(db)
	commentService := services.NewCommentService(db)
	tagService := services.NewTagService(db)

	styleHandler := handlers.NewStyleHandler(styleService)
	curationHandler := handlers.NewCurationHandler(curationService)
	commentHandler := handlers.NewCommentHandler(commentService)
	tagHandler := handlers.NewTagHandler(tagService)

	styles := router.Group("/styles")
	{
		styles.POST("", styleHandler.CreateStyle)
		styles.GET("", styleHandler.GetStyles)
		styles.GET("/:id", styleHandler.GetStyle)
		styles.PUT("/:id", styleHandler.UpdateStyle)
		styles.PATCH("/:id", styleHandler.UpdateStyle)
		styles.DELETE("/:id", styleHandler.DeleteStyle)

		styles.POST("/:id/curations", curationHandler.CreateCuration)
		styles.GET("/:id/curations", curationHandler.GetCurations)
	}

	curations := router.Group("/curations")
	{
		curations.PUT("/:id", curationHandler.UpdateCuration)
		curations.DELETE("/:id", curationHandler.DeleteCuration)

		curations.POST("/:id/comments", commentHandler.CreateComment)
		curations.GET("/:id/comments", commentHandler.GetComments)
	}

	comments := router.Group("/comments")
	{
		comments.PUT("/:id", commentHandler.UpdateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.GET("/popular", tagHandler.GetPopularTags)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
