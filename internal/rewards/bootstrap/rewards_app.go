package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/logging"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/application"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/domain"
	httpwrap "github.com/Sudeep845/Raktsewa-sub001/internal/rewards/infrastructure/http"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/infrastructure/postgres"
	"github.com/Sudeep845/Raktsewa-sub001/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second
)

type RewardsApp struct {
	cfg    RewardsConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
	audit  *domain.AuditBroadcaster
}

func NewRewardsApp(cfg RewardsConfig, logger logging.Logger) *RewardsApp {
	return &RewardsApp{
		cfg:    cfg,
		logger: logger,
		audit:  domain.NewAuditBroadcaster(),
	}
}

// Audit exposes the broadcaster so portal-side consumers can subscribe to
// redemption records.
func (a *RewardsApp) Audit() *domain.AuditBroadcaster {
	return a.audit
}

func (a *RewardsApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	ledger := postgres.NewLedgerRepository(dbpool)
	catalog := postgres.NewCatalogRepository(dbpool)
	redemptionLog := postgres.NewRedemptionLog(txManager)

	redeemCase := application.NewRedeemCase(catalog, ledger, redemptionLog, a.audit, logger)
	handler := httpwrap.NewRewardsHandler(redeemCase, ledger, catalog)

	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/redeem", handler.Redeem)
		api.GET("/accounts/:"+httpwrap.AccountIdKey+"/balance", handler.GetBalance)
		api.GET("/items/:"+httpwrap.ItemIdKey, handler.GetItem)
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting rewards server", "port", a.cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *RewardsApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down rewards server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("rewards server stopped")
}
