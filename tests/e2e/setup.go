//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-checkout/cmd/bootstrap"
	"cinema-checkout/cmd/bootstrap/components"
	"cinema-checkout/internal/infra/memstore"
	"cinema-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// 各テストスイート用にサンドボックスを起動
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*httptest.Server, *memstore.Store, config.Config) {
	gin.SetMode(gin.TestMode)

	router, store, cfg, app := buildE2EApp()
	require.NotNil(t, router, "Routerのセットアップに失敗")

	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	cfg.Authority.BaseURL = server.URL
	return server, store, cfg
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, store, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp() (*gin.Engine, *memstore.Store, config.Config, *fx.App) {
	var router *gin.Engine
	var store *memstore.Store
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			config.NewTestConfig,
			func(cfg config.Config) config.QueueConfig { return cfg.Queue },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Provide(func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }),
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.WorkerModule,
		components.HandlerModule,

		fx.Populate(&router, &store, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, store, cfg, app
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Server *httptest.Server
	Store  *memstore.Store
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	server, store, cfg := setupE2EEnvironment(s.T())
	s.Server = server
	s.Store = store
	s.Config = cfg
	require.NotNil(s.T(), s.Server, "Serverのセットアップに失敗")
	require.NotNil(s.T(), s.Store, "Storeのセットアップに失敗")
}
