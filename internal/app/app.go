package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samhrndi/ecommerce-analytics/internal/dashboard"
	"github.com/samhrndi/ecommerce-analytics/internal/server"
	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

func Run(cfg *Config) error {
	connector := snowflake.NewConnector(snowflake.Config{
		Account:        cfg.Snowflake.Account,
		User:           cfg.Snowflake.User,
		Role:           cfg.Snowflake.Role,
		Warehouse:      cfg.Snowflake.Warehouse,
		Database:       cfg.Snowflake.Database,
		PrivateKeyPath: cfg.Snowflake.PrivateKeyPath,
	})

	svc := dashboard.NewService(connector, dashboard.NewCache(cfg.CacheTTL))

	httpSrv := server.NewHTTPServer(server.Config{
		Addr:        cfg.Addr,
		CORSOrigins: cfg.Origins(),
	}, svc)

	go func() {
		log.Printf("http server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}
