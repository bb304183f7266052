package httpserver

import (
	"context"

	"engagement-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// Pricing first: revenue resolves rates through it, engagement and
	// moderation recompute through revenue.
	if err := srv.setupPricingDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupRevenueDomain(ctx); err != nil {
		return err
	}
	if err := srv.setupPostDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupEngagementDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupModerationDomain(ctx, r, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
