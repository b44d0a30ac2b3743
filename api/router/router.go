package router

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"inkpost/api/handlers"
	"inkpost/api/middleware"
	"inkpost/auth"
	"inkpost/config"
	"inkpost/db"
	"inkpost/repositories"
	"inkpost/services"
)

// New wires repositories, services and routes into a gin engine.
func New() (*gin.Engine, error) {
	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		return nil, err
	}

	database := db.Database()
	blogRepo := repositories.NewBlogRepository(database)
	userRepo := repositories.NewUserRepository(database)
	categoryRepo := repositories.NewCategoryRepository(database)
	tagRepo := repositories.NewTagRepository(database)
	visitorRepo := repositories.NewVisitorRepository(database)

	blogSvc := services.NewBlogService(blogRepo, userRepo, categoryRepo, tagRepo)
	commentSvc := services.NewCommentService(blogSvc)
	likeSvc := services.NewLikeService(blogSvc)
	authSvc := services.NewAuthService(userRepo, jwtManager)
	userSvc := services.NewUserService(userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	tagSvc := services.NewTagService(tagRepo)
	statsSvc := services.NewStatsService(blogRepo, userRepo, categoryRepo)
	visitorSvc := services.NewVisitorService(visitorRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.VisitorLogging(visitorSvc))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded blog images
	cfg := config.GetConfig()
	r.Static("/uploads", filepath.Join(config.GetBasePath(), cfg.Upload.Dir))

	authRequired := middleware.AuthMiddleware(jwtManager)
	adminOnly := middleware.AdminMiddleware()

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("/register", handlers.RegisterHandler(authSvc))
			users.POST("/login", handlers.LoginHandler(authSvc))
			users.GET("", authRequired, adminOnly, handlers.ListUsersHandler(userSvc))
			users.GET("/:id", handlers.GetUserHandler(userSvc))
			users.PUT("/:id", authRequired, handlers.UpdateUserHandler(userSvc))
			users.DELETE("/:id", authRequired, handlers.DeleteUserHandler(userSvc))
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", handlers.ListBlogsHandler(blogSvc))
			blogs.GET("/:id", handlers.GetBlogHandler(blogSvc))
			blogs.POST("", authRequired, handlers.CreateBlogHandler(blogSvc))
			blogs.PUT("/:id", authRequired, handlers.UpdateBlogHandler(blogSvc))
			blogs.DELETE("/:id", authRequired, handlers.DeleteBlogHandler(blogSvc))
			blogs.POST("/:id/view", handlers.IncrementBlogViewsHandler(blogSvc))

			blogs.POST("/:id/comments", authRequired, handlers.AddCommentHandler(commentSvc))
			blogs.DELETE("/:id/comments/:commentId", authRequired, handlers.DeleteCommentHandler(commentSvc))
			blogs.POST("/:id/comments/:commentId/replies", authRequired, handlers.ReplyToCommentHandler(commentSvc))
			blogs.GET("/:id/comments/:commentId/replies", handlers.GetRepliesHandler(commentSvc))

			blogs.POST("/:id/like", authRequired, handlers.ToggleLikeHandler(likeSvc))
			blogs.GET("/:id/like", authRequired, handlers.LikeStatusHandler(likeSvc))
		}

		categories := api.Group("/categories")
		{
			categories.GET("", handlers.ListCategoriesHandler(categorySvc))
			categories.POST("", authRequired, adminOnly, handlers.CreateCategoryHandler(categorySvc))
			categories.DELETE("/:id", authRequired, adminOnly, handlers.DeleteCategoryHandler(categorySvc))
		}

		tags := api.Group("/tags")
		{
			tags.GET("", handlers.ListTagsHandler(tagSvc))
			tags.POST("", authRequired, adminOnly, handlers.CreateTagHandler(tagSvc))
			tags.DELETE("/:id", authRequired, adminOnly, handlers.DeleteTagHandler(tagSvc))
		}

		stats := api.Group("/stats")
		{
			stats.GET("", handlers.BasicStatsHandler(statsSvc))
			stats.GET("/dashboard", authRequired, adminOnly, handlers.DashboardStatsHandler(statsSvc))
			stats.GET("/recent", authRequired, adminOnly, handlers.RecentPostsHandler(statsSvc))
		}

		visitors := api.Group("/visitors")
		{
			visitors.GET("", authRequired, adminOnly, handlers.ListVisitorsHandler(visitorSvc))
			visitors.GET("/stats", authRequired, adminOnly, handlers.VisitorStatsHandler(visitorSvc))
		}
	}

	return r, nil
}
