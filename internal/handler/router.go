package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smakownia-backend/internal/domain/user"
	"smakownia-backend/internal/handler/api"
	"smakownia-backend/internal/handler/middleware"
	"smakownia-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, paymentHandler, webhookHandler, catalogHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/create-payment", Handler: paymentHandler.CreatePayment},
			{Method: http.MethodPost, Path: "/retry-payment", Handler: paymentHandler.RetryPayment},
			{Method: http.MethodGet, Path: "/payment-status", Handler: paymentHandler.GetStatus},
			{Method: http.MethodPost, Path: "/process-payment", Handler: paymentHandler.ProcessPayment},
			{Method: http.MethodPost, Path: "/payment-webhook-email", Handler: webhookHandler.HandleNotification},
			// Legacy path still configured on the gateway side.
			{Method: http.MethodPost, Path: "/payment-webhook", Handler: webhookHandler.HandleNotification},

			{Method: http.MethodGet, Path: "/masterclasses", Handler: catalogHandler.ListMasterclasses},
			{Method: http.MethodGet, Path: "/masterclasses/:id", Handler: catalogHandler.GetMasterclass},
			{Method: http.MethodGet, Path: "/online-products", Handler: catalogHandler.ListProducts},
			{Method: http.MethodGet, Path: "/online-products/:id", Handler: catalogHandler.GetProduct},
			{Method: http.MethodGet, Path: "/partners", Handler: catalogHandler.ListPartners},
			{Method: http.MethodGet, Path: "/map-locations", Handler: catalogHandler.ListLocations},

			{Method: http.MethodPost, Path: "/masterclasses/:id/reduce-slot", Handler: catalogHandler.ReduceMasterclassSlot,
				Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/masterclasses", Handler: catalogHandler.CreateMasterclass},
				{Method: http.MethodPut, Path: "/masterclasses/:id", Handler: catalogHandler.UpdateMasterclass},
				{Method: http.MethodDelete, Path: "/masterclasses/:id", Handler: catalogHandler.DeleteMasterclass},

				{Method: http.MethodPost, Path: "/online-products", Handler: catalogHandler.CreateProduct},
				{Method: http.MethodPut, Path: "/online-products/:id", Handler: catalogHandler.UpdateProduct},
				{Method: http.MethodDelete, Path: "/online-products/:id", Handler: catalogHandler.DeleteProduct},

				{Method: http.MethodPost, Path: "/partners", Handler: catalogHandler.CreatePartner},
				{Method: http.MethodPut, Path: "/partners/:id", Handler: catalogHandler.UpdatePartner},
				{Method: http.MethodDelete, Path: "/partners/:id", Handler: catalogHandler.DeletePartner},

				{Method: http.MethodPost, Path: "/map-locations", Handler: catalogHandler.CreateLocation},
				{Method: http.MethodPut, Path: "/map-locations/:id", Handler: catalogHandler.UpdateLocation},
				{Method: http.MethodDelete, Path: "/map-locations/:id", Handler: catalogHandler.DeleteLocation},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
