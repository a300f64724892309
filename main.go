package main

import (
	"log"
	"net/http"
	"os"

	"newscheck-backend/config"
	"newscheck-backend/handlers"
	"newscheck-backend/helper"
	"newscheck-backend/middleware"
	"newscheck-backend/models"
	"newscheck-backend/repositories"
	"newscheck-backend/services"
	"newscheck-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Validation + response helper
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Fatal("Failed to register validator translations:", err)
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: translator}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	voteRepo := repositories.NewVoteRepository(db)

	// One lock registry shared by every counter-mutating path
	articleLocks := utils.NewKeyLock()

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, voteRepo, articleLocks)
	voteService := services.NewVoteService(voteRepo, articleRepo, articleLocks)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	voteHandler := handlers.NewVoteHandler(voteService, httpHelper)

	// Setup router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		v1.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

		// News
		news := v1.Group("/news")
		{
			news.GET("", articleHandler.GetArticles)
			news.GET("/visible", articleHandler.GetVisibleArticles)
			news.GET("/search", articleHandler.SearchArticles)
			news.GET("/stats", articleHandler.GetStats)
			news.GET("/:id", articleHandler.GetArticle)

			news.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)

			moderate := news.Group("/")
			moderate.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
			{
				moderate.PUT(":id/toggle-visibility", articleHandler.ToggleVisibility)
				moderate.PUT("hide/:id", articleHandler.HideArticle)
				moderate.PUT("show/:id", articleHandler.ShowArticle)
				moderate.PUT("update-all-counts", articleHandler.RecalculateAllCounts)
			}
		}

		// Votes and comments
		votes := v1.Group("/votes")
		{
			votes.GET("", voteHandler.GetVotes)
			votes.GET("/comments", voteHandler.GetComments)
			votes.GET("/news/:newsId", voteHandler.GetVotesByArticle)

			votes.POST("", middleware.AuthMiddleware(), voteHandler.SubmitVote)

			moderate := votes.Group("/")
			moderate.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
			{
				moderate.GET("hidden", voteHandler.GetHiddenVotes)
				moderate.PUT("hide/:id", voteHandler.SetVoteVisibility)
				moderate.PUT("news/:newsId/recalculate", voteHandler.RecalculateCounts)
			}
		}

		// Users
		users := v1.Group("/users")
		{
			users.GET("/roles", authHandler.GetRoles)

			admin := users.Group("/")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("", authHandler.GetUsers)
				admin.PUT(":id/role", authHandler.UpdateRole)
				admin.PUT("hide/:id", authHandler.HideUser)
				admin.PUT("show/:id", authHandler.ShowUser)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
