// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	deliverymiddleware "habit/internal/delivery/middleware"
	"habit/internal/delivery/http/middleware"
	"habit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const graphQLPath = "/graphql"

type RouterParams struct {
	fx.In

	GraphQLHandler      *handler.GraphQLHandler
	HealthHandler       *handler.HealthHandler
	Gatherer            prometheus.Gatherer
	LoggerMiddleware    *deliverymiddleware.LoggerMiddleware
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	graphQLHandler      *handler.GraphQLHandler
	healthHandler       *handler.HealthHandler
	gatherer            prometheus.Gatherer
	loggerMiddleware    *deliverymiddleware.LoggerMiddleware
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		graphQLHandler:      params.GraphQLHandler,
		healthHandler:       params.HealthHandler,
		gatherer:            params.Gatherer,
		loggerMiddleware:    params.LoggerMiddleware,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	// Order matters: the rate limiter reads the operation stored by Authenticate.
	graphGroup := e.Group(graphQLPath,
		r.loggerMiddleware.Handle,
		r.authMiddleware.Authenticate,
		r.rateLimitMiddleware.Handle,
	)
	{
		graphGroup.GET("", r.graphQLHandler.Serve)
		graphGroup.POST("", r.graphQLHandler.Serve)
	}
}
