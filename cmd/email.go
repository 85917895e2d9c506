package cmd

import (
	"context"
	"event-ticket/common/constant"
	"event-ticket/inbound/event"
	emailOutbound "event-ticket/outbound/email"
	"log"
)

func runQueueEmailCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "email")
	defer stopProfile()

	stopTracer := newTracer(ctx, cfg, "event-ticket-email")
	defer stopTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	_, st := newJs(ctx, cfg, natsConn)

	outbound := &emailOutbound.EmailOutbound{Cfg: cfg}
	if err := outbound.Init(); err != nil {
		log.Fatalln("failed to init email outbound", err)
	}

	emailEvent := event.EmailEvent{
		Mailer:  outbound,
		Timeout: cfg.GetDuration("queue.email.timeout"),
	}

	consume(ctx, cfg, st, "email", constant.EmailWildcard, map[string]handlerFunc{
		constant.SubjectSendEmail: emailEvent.SendEmailHandler,
	})
}
