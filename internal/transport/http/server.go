package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/service/session"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// Server exposes the bot as a JSON API.
type Server struct {
	srv *http.Server
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, bot Handler, sessions *session.Store) *Server {
	return &Server{
		srv: &http.Server{
			Addr:           cfg.Address,
			Handler:        newRouter(ctx, bot, sessions),
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

func newRouter(ctx context.Context, bot Handler, sessions *session.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &chatHandler{bot: bot, sessions: sessions}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(ctx),
		errorHandling(),
	)

	router.GET("/healthz", health)

	api := router.Group("/api")
	{
		api.POST("/sessions", h.createSession)
		api.DELETE("/sessions/:id", h.deleteSession)
		api.POST("/sessions/:id/messages", h.postMessage)
		api.GET("/sessions/:id/transcript", h.getTranscript)
	}

	return router
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
