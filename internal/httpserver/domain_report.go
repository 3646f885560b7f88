package httpserver

import (
	"context"
	"time"

	"fluency-srv/internal/middleware"
	reportHTTP "fluency-srv/internal/report/delivery/http"
	reportMongo "fluency-srv/internal/report/repository/mongo"
	reportUsecase "fluency-srv/internal/report/usecase"
	pkghttp "fluency-srv/pkg/http"
	"fluency-srv/pkg/s3relay"
	"fluency-srv/pkg/sas"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportMongo.New(srv.mongoDB, srv.l)

	relayClient := s3relay.New(s3relay.RelayConfig{
		BaseURL: srv.config.S3Relay.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: time.Duration(srv.config.S3Relay.Timeout) * time.Second,
		}),
	})

	sasClient := sas.New(sas.SASConfig{
		BaseURL: srv.config.SAS.URL,
		APIKey:  srv.config.SAS.APIKey,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: time.Duration(srv.config.SAS.Timeout) * time.Second,
		}),
	})

	uc := reportUsecase.New(repo, relayClient, sasClient, srv.l, reportUsecase.Config{
		ScoringAPIKey: srv.config.SAS.APIKey,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
