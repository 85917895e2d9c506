package cmd

import (
	"context"
	"event-ticket/common/constant"
	"event-ticket/inbound/event"
	"event-ticket/outbound/sqlgen"
	"event-ticket/service"
	"github.com/go-playground/validator/v10"
)

func runQueueUserCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "user")
	defer stopProfile()

	stopTracer := newTracer(ctx, cfg, "event-ticket-user")
	defer stopTracer()

	db := newDb(cfg)
	defer db.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	_, st := newJs(ctx, cfg, natsConn)

	userEvent := event.UserEvent{
		Rewarder: service.NewReferralService(db, sqlgen.New(db)),
		Validate: validator.New(),
		Timeout:  cfg.GetDuration("queue.user.timeout"),
	}

	consume(ctx, cfg, st, "user", constant.UserWildcard, map[string]handlerFunc{
		constant.SubjectUserReferred: userEvent.ReferralHandler,
	})
}
