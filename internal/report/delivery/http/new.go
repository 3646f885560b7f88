package http

import (
	"fluency-srv/internal/middleware"
	"fluency-srv/internal/report"
	"fluency-srv/pkg/discord"
	"fluency-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      report.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc report.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
