package router

import (
	"github.com/gin-gonic/gin"

	"forumapi/internal/db"
	"forumapi/internal/handlers"
	"forumapi/internal/middleware"
	"forumapi/internal/storage/postgres"
	"forumapi/internal/usecase"
)

func RegisterRoutes(r *gin.Engine) {
	// Storage
	threadStorage := postgres.NewThreadPostgresStorage(db.DB)
	commentStorage := postgres.NewCommentPostgresStorage(db.DB)
	replyStorage := postgres.NewReplyPostgresStorage(db.DB)
	likeStorage := postgres.NewLikePostgresStorage(db.DB)
	userStorage := postgres.NewUserPostgresStorage(db.DB)

	// Use cases
	threadUseCase := usecase.NewThreadUseCase(threadStorage, commentStorage, replyStorage)
	commentUseCase := usecase.NewCommentUseCase(threadStorage, commentStorage)
	replyUseCase := usecase.NewReplyUseCase(threadStorage, commentStorage, replyStorage)
	likeUseCase := usecase.NewLikeUseCase(threadStorage, commentStorage, likeStorage)
	userUseCase := usecase.NewUserUseCase(userStorage)

	// Handlers
	authHandler := handlers.NewAuthHandler(userUseCase)
	threadHandler := handlers.NewThreadHandler(threadUseCase)
	commentHandler := handlers.NewCommentHandler(commentUseCase)
	replyHandler := handlers.NewReplyHandler(replyUseCase)
	likeHandler := handlers.NewLikeHandler(likeUseCase)

	// Public Routes
	r.POST("/users", authHandler.Register)
	r.POST("/authentications", authHandler.Login)
	r.GET("/threads/:threadId", threadHandler.Detail)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/threads", threadHandler.Create)
		authorized.POST("/threads/:threadId/comments", commentHandler.Create)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.Delete)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", likeHandler.Toggle)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.Create)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.Delete)
	}
}
