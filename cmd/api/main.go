package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/infrastructure/database/postgres"
	"github.com/vfg2006/painel-leads-api/infrastructure/docstore"
	"github.com/vfg2006/painel-leads-api/internal/api"
	"github.com/vfg2006/painel-leads-api/internal/api/handler"
	"github.com/vfg2006/painel-leads-api/internal/config"
	"github.com/vfg2006/painel-leads-api/internal/scheduler"
	"github.com/vfg2006/painel-leads-api/internal/subscribing"
	"github.com/vfg2006/painel-leads-api/internal/translator"
	"github.com/vfg2006/painel-leads-api/internal/usecases/dashboard"
	"github.com/vfg2006/painel-leads-api/internal/usecases/ranking"
	"github.com/vfg2006/painel-leads-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	store, cleanup := openStore(gctx, cfg, g)
	defer cleanup()

	hub := handler.NewStreamHub()

	manager := subscribing.NewManager(store, translator.New(), hub)
	defer manager.Close()

	board := dashboard.NewService(manager)
	board.Start(ctx)
	defer board.Stop()

	rankingService := ranking.NewSellerRankingService(board)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(manager, cfg)
	if err := snapshotRefreshService.Start(gctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga das coleções")
	} else {
		logrus.Info("Agendador de recarga das coleções iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		board,
		manager,
		rankingService,
		hub,
		snapshotRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	g.Go(func() error {
		// Quando o servidor para, o resto do grupo para junto
		defer cancel()
		return server.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error(err)
	}
}

// configureLogger aplica o formato dos logs antes da configuração ser lida
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Configure(logrus.InfoLevel.String())
}

// openStore escolhe o banco de documentos. Sem credenciais ou sem conexão o painel
// roda em modo visualização: store nil, leituras vazias e escritas bloqueadas.
func openStore(ctx context.Context, cfg *config.Config, g *errgroup.Group) (docstore.Store, func()) {
	noop := func() {}

	if cfg.DocStore.Driver == config.DocStoreDriverMemory {
		logrus.Info("Usando banco de documentos em memória")
		return docstore.NewMemoryStore(), noop
	}

	if !cfg.Database.IsConfigured() {
		logrus.Warn("Banco de dados não configurado. Dados não serão salvos (Modo Visualização).")
		return nil, noop
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL, seguindo em modo visualização")
		return nil, noop
	}

	if err := docstore.EnsureSchema(ctx, conn, cfg.DocStore.NotifyChannel); err != nil {
		logrus.WithError(err).Error("Erro ao preparar a tabela de documentos, seguindo em modo visualização")
		conn.Close()
		return nil, noop
	}

	listener, err := postgres.NewListener(cfg.Database, cfg.DocStore)
	if err != nil {
		logrus.WithError(err).Error("Erro ao escutar alterações no PostgreSQL, seguindo em modo visualização")
		conn.Close()
		return nil, noop
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	store := docstore.NewPostgresStore(conn, listener)
	g.Go(func() error {
		return store.Run(ctx)
	})

	return store, func() {
		listener.Close()
		conn.Close()
	}
}
