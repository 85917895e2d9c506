package cmd

import (
	"context"
	inboundHttp "event-ticket/inbound/http"
	"event-ticket/outbound/sqlgen"
	"event-ticket/service"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log"
	"log/slog"
	"net/http"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "http")
	defer stopProfile()

	stopTracer := newTracer(ctx, cfg, "event-ticket-http")
	defer stopTracer()

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js, _ := newJs(ctx, cfg, natsConn)

	querier := sqlgen.New(db)
	transactionService := service.NewTransactionService(cfg, db, querier, js)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)
	authMiddleware := inboundHttp.AuthMiddleware([]byte(cfg.GetString("jwt.secret")))

	inboundHttp.RegisterTransactionHttp(mux, transactionService, validate, authMiddleware)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(inboundHttp.MetricsMiddleware(mux))),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started", slog.Int("port", cfg.GetInt("server.port")))

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
