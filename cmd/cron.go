package cmd

import (
	"context"
	inboundCron "event-ticket/inbound/cron"
	"event-ticket/outbound/sqlgen"
	"event-ticket/service"
	"github.com/google/uuid"
)

func runCronCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopTracer := newTracer(ctx, cfg, "event-ticket-cron")
	defer stopTracer()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js, _ := newJs(ctx, cfg, natsConn)

	transactionCron := inboundCron.TransactionCron{
		Cfg:        cfg,
		Cache:      cacheClient,
		Sweeper:    service.NewTransactionService(cfg, db, sqlgen.New(db), js),
		InstanceID: uuid.NewString(),
	}

	transactionCron.Start(ctx)
}
