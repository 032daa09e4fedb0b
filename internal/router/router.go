package router

import (
	"time"

	"github.com/Ito-Kosuke-10/omise-ai/internal/auth"
	"github.com/Ito-Kosuke-10/omise-ai/internal/menu"
	"github.com/Ito-Kosuke-10/omise-ai/internal/middleware"
	"github.com/Ito-Kosuke-10/omise-ai/internal/plan"
	"github.com/Ito-Kosuke-10/omise-ai/internal/subsidy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	FrontendURL string

	Tokens    *auth.TokenManager
	Auth      *auth.Handler
	Plans     *plan.Handler
	Menus     *menu.Handler
	Subsidies *subsidy.Handler
}

// New assembles the full HTTP surface. Shared between cmd/api and the
// handler tests.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			deps.FrontendURL,
			"http://localhost:3000",
			"https://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "おみせ開業AI API", "status": "running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	requireAuth := middleware.AuthMiddleware(deps.Tokens)

	plans := api.Group("/plans")
	{
		plans.POST("", deps.Plans.CreatePlan)
		plans.GET("", deps.Plans.ListPlans)
		plans.GET("/my", requireAuth, deps.Plans.ListMyPlans)
		plans.GET("/:id", deps.Plans.GetPlan)
	}

	api.GET("/menus/:type/:concept", deps.Menus.GetSuggestions)
	api.GET("/subsidies/:area", deps.Subsidies.GetSubsidies)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.GET("/me", requireAuth, deps.Auth.Me)
	}

	return r
}
