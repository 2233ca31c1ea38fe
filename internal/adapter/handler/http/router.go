package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	checkoutHandler *CheckoutHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()
	router.Use(metricsMiddleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", prometheusHandler())

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			// basket pricing needs no identity, matching the shop client
			orders.POST("/checkout", checkoutHandler.ValidateBasket)

			authorized := orders.Group("")
			{
				authorized.Use(authCheck(tokenService))
				authorized.POST("", checkoutHandler.BeginCheckout)
				authorized.POST("/capture/:authorizationID", checkoutHandler.Capture)
				authorized.POST("/release/:authorizationID", checkoutHandler.Release)
				authorized.GET("", orderHandler.ListOrdersByUser)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
