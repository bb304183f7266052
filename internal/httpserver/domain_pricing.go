package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	pricingHTTP "engagement-srv/internal/pricing/delivery/http"
	pricingPostgre "engagement-srv/internal/pricing/repository/postgre"
	pricingUsecase "engagement-srv/internal/pricing/usecase"
)

func (srv *HTTPServer) setupPricingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := pricingPostgre.New(srv.postgresDB, srv.l)

	srv.pricingUC = pricingUsecase.New(repo, srv.l)

	handler := pricingHTTP.New(srv.l, srv.pricingUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Pricing domain registered")
	return nil
}
