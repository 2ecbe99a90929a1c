package app

import (
	"github.com/Praveenkumar07007/BlogApp/internal/auth"
	"github.com/Praveenkumar07007/BlogApp/internal/cache"
	"github.com/Praveenkumar07007/BlogApp/internal/config"
	"github.com/Praveenkumar07007/BlogApp/internal/handlers"
	"github.com/Praveenkumar07007/BlogApp/internal/oauth"
	"github.com/Praveenkumar07007/BlogApp/internal/repo"
	"github.com/Praveenkumar07007/BlogApp/internal/service"
	"github.com/Praveenkumar07007/BlogApp/internal/tasks"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	tokens := auth.NewTokenCodec([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(userSvc, tokens)

	states := auth.NewStateStore(rdb, cfg.Auth.StateTTL.Duration())
	googleSvc := service.NewGoogleService(userRepo)
	googleClient := oauth.NewGoogleClient(cfg.Google)
	googleHandler := handlers.NewGoogleHandler(googleClient, states, googleSvc, tokens)

	blogRepo := repo.NewPGBlogRepo(db)
	blogCache := cache.NewBlogCache(rdb, cfg.Redis.DefaultTTL.Duration())
	blogSvc := service.NewBlogService(blogRepo, blogCache)
	queue := tasks.NewQueue(rdb)
	blogHandler := handlers.NewBlogHandler(blogSvc, queue)

	registerAuthRoutes(api, authHandler, googleHandler, tokens)
	registerBlogRoutes(api, blogHandler, tokens)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Blog API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, g *handlers.GoogleHandler, tokens *auth.TokenCodec) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/profile", auth.RequireToken(tokens), h.Profile)
	api.GET("/google/login", g.Login)
	api.GET("/google/callback", g.Callback)
}

func registerBlogRoutes(api *gin.RouterGroup, h *handlers.BlogHandler, tokens *auth.TokenCodec) {
	api.POST("/posts", auth.RequireToken(tokens), h.Create)
	api.GET("/posts", h.List)
}
