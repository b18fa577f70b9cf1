package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/middleware"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/service"
)

// NewRouter assembles the gin engine with every route of the API.
// The user repository is needed separately from the services because the
// identity middleware checks usernames directly against the store.
func NewRouter(
	catalog *service.CatalogService,
	users *service.UserService,
	reviews *service.ReviewService,
	userRepo *repository.UserRepository,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	bookHandler := &BookHandler{Catalog: catalog}
	userHandler := &UserHandler{Users: users}
	reviewHandler := &ReviewHandler{Reviews: reviews}

	bookHandler.RegisterRoutes(r)
	userHandler.RegisterRoutes(r)
	reviewHandler.RegisterRoutes(r, middleware.RequireUser(userRepo))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}
