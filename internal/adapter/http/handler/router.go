package handler

import (
	"ramp-gateway/internal/adapter/http/middleware"
	"ramp-gateway/internal/adapter/notify"
	redisStore "ramp-gateway/internal/adapter/storage/redis"
	"ramp-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	Reconciler     ports.WebhookReconciler
	UserSvc        ports.UserService
	MarketSvc      ports.MarketService
	TokenSvc       ports.TokenService        // nil = bearer tokens not required
	Hub            *notify.Hub               // nil = no websocket endpoint
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc       ports.AuditService        // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/docs", APIDocs)
	r.GET("/docs/spec", APISpec)

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.AdminOnly()

	// --- Provider callbacks (HMAC-verified by the reconciler) ---
	webhookHandler := NewWebhookHandler(deps.Reconciler)
	r.POST("/webhooks/fincra", rl("webhook"), webhookHandler.Fincra)
	r.POST("/webhooks/paybox", rl("webhook"), webhookHandler.Paybox)

	// --- Orders ---
	orderHandler := NewOrderHandler(deps.OrderSvc)
	order := r.Group("/order", jwtAuth)
	{
		order.POST("/create", rl("order_write"), orderHandler.Create)
		order.POST("/debit", rl("order_write"), orderHandler.Debit)
		order.POST("/credit", rl("order_write"), orderHandler.Credit)
		order.POST("/complete", rl("order_write"), orderHandler.Complete)
		order.PATCH("/:id/:userId/:status", adminOnly, rl("order_write"), orderHandler.OverrideStatus)
		order.POST("/:id/fail", adminOnly, rl("order_write"), orderHandler.Fail)
		order.GET("/by-user/:userId", rl("order_read"), orderHandler.ListByUser)
		order.GET("/user-account/:userId", rl("order_read"), orderHandler.UserAccountTx)
		order.GET("/:id", rl("order_read"), orderHandler.Get)
	}

	// --- Users ---
	userHandler := NewUserHandler(deps.UserSvc)
	r.POST("/users", rl("users"), userHandler.Signup)
	users := r.Group("/users", jwtAuth)
	{
		users.GET("/:id", rl("order_read"), userHandler.Get)
		users.PUT("/:id/wallet", rl("users"), userHandler.LinkWallet)
	}

	// --- Market data ---
	marketHandler := NewMarketHandler(deps.MarketSvc)
	r.GET("/rates/:symbol", rl("market"), marketHandler.Rate)
	r.GET("/banks", rl("market"), marketHandler.Banks)

	// --- Status stream ---
	if deps.Hub != nil {
		r.GET("/ws", jwtAuth, NewStreamHandler(deps.Hub).Subscribe)
	}

	return r
}
