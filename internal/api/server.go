package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/api/handler"
	"github.com/vfg2006/painel-leads-api/internal/api/handler/router"
	"github.com/vfg2006/painel-leads-api/internal/config"
	"github.com/vfg2006/painel-leads-api/internal/usecases/ranking"
	"github.com/vfg2006/painel-leads-api/pkg/middleware"
)

type Server struct {
	httpServer   *http.Server
	hub          *handler.StreamHub
	stopForwards func()
}

func New(
	config *config.Config,
	board handler.Board,
	store handler.StoreStatus,
	rankingService ranking.RankingService,
	hub *handler.StreamHub,
	snapshotRefresh handler.CronJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotRefreshService: snapshotRefresh,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(store)...),
		router.WithRoutes(handler.Leads(board)...),
		router.WithRoutes(handler.Renewals(board)...),
		router.WithRoutes(handler.Users(board)...),
		router.WithRoutes(handler.SellerRanking(rankingService)...),
		router.WithRoutes(handler.LiveStream(board, hub, config.Cors.AllowedOrigins)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		hub:          hub,
		stopForwards: handler.ForwardChanges(board, hub),
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		s.stopForwards()
		s.hub.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown fecha os streams abertos e depois o servidor HTTP. Conexões websocket
// não são acompanhadas pelo http.Server depois do upgrade.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopForwards()
	s.hub.Close()

	logrus.WithField("stream_clients", s.hub.Count()).Info("Streams encerrados")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
