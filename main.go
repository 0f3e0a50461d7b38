package main

import (
	"log"
	"net/http"

	"ifphub/config"
	"ifphub/handlers"
	"ifphub/helper"
	"ifphub/middleware"
	"ifphub/repositories"
	"ifphub/services"
	"ifphub/storage"
	"ifphub/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	// Initialize database
	db := config.InitDB(cfg)

	codec, err := token.NewCodec(cfg.SigSalt)
	if err != nil {
		log.Fatalf("Failed to initialize sig codec: %v", err)
	}

	// Initialize repositories
	usuarioRepo := repositories.NewUsuarioRepository(db)
	noticiaRepo := repositories.NewNoticiaRepository(db)

	httpHelper := helper.NewHTTPHelper()
	middleware.HTTPHelper = httpHelper

	// Initialize services
	authService := services.NewAuthService(usuarioRepo, codec)
	noticiaService := services.NewNoticiaService(noticiaRepo, authService, cfg.CreatorRoles)
	searchService := services.NewSearchService(noticiaRepo)

	// Image storage is optional: the imagen field also accepts plain URLs.
	var mediaService services.MediaService
	if cfg.MinIO.Endpoint != "" {
		st, err := storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		mediaService = services.NewMediaService(st)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	noticiaHandler := handlers.NewNoticiaHandler(noticiaService, searchService, httpHelper)
	mediaHandler := handlers.NewMediaHandler(mediaService, httpHelper)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORSMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		usuario := api.Group("/usuario")
		{
			usuario.POST("/login", authHandler.Login)
			usuario.GET("/rol", authHandler.GetRol)
		}

		noticias := api.Group("/noticias")
		{
			noticias.GET("", noticiaHandler.GetNoticias)
			noticias.GET("/:id", noticiaHandler.GetNoticia)
			noticias.POST("", noticiaHandler.CreateNoticia)
			noticias.POST("/imagen",
				middleware.RequireCreator(authService, cfg.CreatorRoles),
				mediaHandler.UploadImagen)
		}

		api.GET("/busqueda", noticiaHandler.Search)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
