package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/middleware"
	postHTTP "engagement-srv/internal/post/delivery/http"
	postPostgre "engagement-srv/internal/post/repository/postgre"
	postUsecase "engagement-srv/internal/post/usecase"
)

func (srv *HTTPServer) setupPostDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := postPostgre.New(srv.postgresDB, srv.l)

	uc := postUsecase.New(repo, srv.l)

	handler := postHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Post domain registered")
	return nil
}
