package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	coreauth "go-product-api/internal/core/auth"
	authfeature "go-product-api/internal/feature/auth"
	"go-product-api/internal/feature/product"
	mdw "go-product-api/internal/transport/http/middleware"
)

// Deps carries everything the HTTP surface needs, constructed in main and
// passed down; there is no global state beyond the prometheus registry.
type Deps struct {
	Log      *zap.Logger
	JWTer    *coreauth.JWTer
	Auth     *authfeature.Handler
	Products *product.Handler
}

// New assembles the engine. The error-chain middleware wraps the whole
// versioned group so every c.Error is normalized into the failure envelope,
// and the success envelope is applied at the respond step inside handlers.
func New(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(mdw.Errors())

	api.POST("/auth", mdw.Validate(authfeature.LoginSchema, ""), d.Auth.Login)

	products := api.Group("/products")
	products.Use(mdw.AuthGuard(d.JWTer))
	{
		products.GET("", d.Products.List)
		products.POST("", mdw.Validate(product.CreateSchema, "image"), d.Products.Create)
		products.GET("/:id", d.Products.Get)
		products.PUT("/:id", mdw.Validate(product.UpdateSchema, "image"), d.Products.Update)
		products.DELETE("/:id", d.Products.Delete)
	}

	return r
}
