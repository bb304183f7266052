package httpserver

import (
	"context"

	revenuePostgre "engagement-srv/internal/revenue/repository/postgre"
	revenueUsecase "engagement-srv/internal/revenue/usecase"
)

// setupRevenueDomain has no routes of its own. Revenue is recomputed through
// engagement and moderation operations.
func (srv *HTTPServer) setupRevenueDomain(ctx context.Context) error {
	repo := revenuePostgre.New(srv.postgresDB, srv.l)

	srv.revenueUC = revenueUsecase.New(repo, srv.pricingUC, srv.l)

	srv.l.Infof(ctx, "Revenue domain registered")
	return nil
}
