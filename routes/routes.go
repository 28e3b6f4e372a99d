package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/budgetfly/budgetfly-api/handlers"
	"github.com/budgetfly/budgetfly-api/middleware"
	"github.com/budgetfly/budgetfly-api/services"
	"github.com/budgetfly/budgetfly-api/storage"
)

// NewRouter wires the full HTTP surface over the given store.
func NewRouter(store storage.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Deliberately open: any origin, with credentials. This is an
	// internal/personal tool, not a hardened public surface.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(middleware.RateLimiter(100, time.Minute))

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "BudgetFly API"})
		})
		SetupBudgetItemRoutes(api, store)
		SetupFamilyMemberRoutes(api, store)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return router
}

// SetupBudgetItemRoutes registers the budget item CRUD and summary routes.
func SetupBudgetItemRoutes(rg *gin.RouterGroup, store storage.Store) {
	itemService := services.NewBudgetItemService(store)
	summaryService := services.NewSummaryService(store)

	h := handlers.NewBudgetItemHandler(itemService, summaryService)

	rg.POST("/items", h.Create)
	rg.GET("/items", h.List)
	rg.GET("/items/:id", h.Get)
	rg.PUT("/items/:id", h.Update)
	rg.DELETE("/items/:id", h.Delete)
	rg.GET("/summary", h.Summary)
}

// SetupFamilyMemberRoutes registers the family member routes. Members have no
// update route, mutation is create-or-delete only.
func SetupFamilyMemberRoutes(rg *gin.RouterGroup, store storage.Store) {
	h := handlers.NewFamilyMemberHandler(services.NewFamilyMemberService(store))

	rg.POST("/family-members", h.Create)
	rg.GET("/family-members", h.List)
	rg.DELETE("/family-members/:id", h.Delete)
}
