package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/container"
)

// SetupRouter wires every HTTP route to its handler. Write routes sit
// behind RequireLogin; reads are public.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	requireLogin := middleware.RequireLogin(c.Config.JWT.Secret, c.Config.App.LoginPath)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
				return
			}

			cacheStatus := "ok"
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				cacheStatus = "degraded"
			}

			response.Success(ctx, http.StatusOK, gin.H{"status": "ok", "cache": cacheStatus})
		})

		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.UserHandler.Register)
			auth.POST("/login", c.UserHandler.Login)
			auth.POST("/token-login", c.IdentityHandler.TokenLogin)
		}

		users := v1.Group("/users")
		{
			users.GET("/me", requireLogin, c.UserHandler.Me)
		}

		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.GetAll)
			books.GET("/mirror", c.BookHandler.ListMirror)
			books.GET("/slug/:slug", c.BookHandler.GetBySlug)
			books.POST("", requireLogin, c.BookHandler.Create)
			books.PUT("/slug/:slug", requireLogin, c.BookHandler.Update)
			books.DELETE("/slug/:slug", requireLogin, c.BookHandler.Delete)

			books.GET("/slug/:slug/reviews", c.ReviewHandler.GetByBook)
			books.POST("/slug/:slug/reviews", requireLogin, c.ReviewHandler.Create)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", c.AuthorHandler.GetAll)
			authors.GET("/slug/:slug", c.AuthorHandler.GetBySlug)
			authors.POST("", requireLogin, c.AuthorHandler.Create)
			authors.DELETE("/:id", requireLogin, c.AuthorHandler.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", c.CategoryHandler.GetAll)
			categories.GET("/slug/:slug", c.CategoryHandler.GetBySlug)
			categories.POST("", requireLogin, c.CategoryHandler.Create)
			categories.DELETE("/:id", requireLogin, c.CategoryHandler.Delete)
		}
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return router
}
