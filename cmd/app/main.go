package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"hiddengems/cmd/fx/accountfx"
	"hiddengems/cmd/fx/categoriesfx"
	"hiddengems/cmd/fx/commentsfx"
	"hiddengems/cmd/fx/controllersfx"
	"hiddengems/cmd/fx/corefx"
	"hiddengems/cmd/fx/dashboardfx"
	"hiddengems/cmd/fx/dbfx"
	"hiddengems/cmd/fx/placesfx"
	"hiddengems/cmd/fx/reviewsfx"
	"hiddengems/cmd/fx/uploadfx"
	"hiddengems/internal/api/controllers"
	"hiddengems/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on ambient environment")
	}

	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		corefx.Module,
		dbfx.Module,
		placesfx.Module,
		categoriesfx.Module,
		commentsfx.Module,
		reviewsfx.Module,
		accountfx.Module,
		dashboardfx.Module,
		uploadfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	redisClient *redis.Client,
	logger *zap.Logger,
	placesController *controllers.PlacesController,
	commentsController *controllers.CommentsController,
	reviewsController *controllers.ReviewsController,
	categoriesController *controllers.CategoriesController,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	limiter := middleware.NewRateLimiter(redisClient, 120, time.Minute, logger)
	r.Use(limiter.Middleware())

	RegisterRoutes(r,
		placesController,
		commentsController,
		reviewsController,
		categoriesController,
		accountController,
		dashboardController,
		uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	commentsController *controllers.CommentsController,
	reviewsController *controllers.ReviewsController,
	categoriesController *controllers.CategoriesController,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController,
	uploadController *controllers.UploadController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.ListPlaces)
	placesGroup.GET("/:id", placesController.GetPlaceByID)
	placesGroup.GET("/:id/comments", commentsController.ListComments)

	placesAuth := placesGroup.Group("", middleware.JWTAuthMiddleware())
	placesAuth.POST("", placesController.CreatePlace)
	placesAuth.GET("/:id/edit", placesController.GetPlaceForEdit)
	placesAuth.PUT("/:id", placesController.UpdatePlace)
	placesAuth.PUT("/:id/images", placesController.UpdatePlaceImages)
	placesAuth.POST("/:id/comments", commentsController.AddComment)
	placesAuth.POST("/:id/reviews", reviewsController.AddReview)

	commentsGroup := r.Group("/comments")
	commentsGroup.GET("/:id/replies", commentsController.ListReplies)
	commentsGroup.POST("/:id/replies", middleware.JWTAuthMiddleware(), commentsController.AddReply)

	r.GET("/map/places", middleware.JWTAuthMiddleware(), placesController.GetPlacesByBounds)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.GetCategories)

	adminCategories := categoriesGroup.Group("",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminCategories.POST("", categoriesController.CreateCategory)
	adminCategories.PUT("/:id", categoriesController.UpdateCategory)

	adminGroup := r.Group("",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/dashboard/stats", dashboardController.GetStats)
	adminGroup.GET("/dashboard/recent", dashboardController.GetRecentActivity)
	adminGroup.PUT("/users/:id/ban", accountController.BanUser)
	adminGroup.PUT("/users/:id/unban", accountController.UnbanUser)

	uploadsGroup := r.Group("/uploads", middleware.JWTAuthMiddleware())
	uploadsGroup.POST("/presign", uploadController.PresignUpload)

	r.GET("/gallery", middleware.JWTAuthMiddleware(), uploadController.GetGallery)
}
