package cmd

import (
	"context"
	"errors"
	"event-ticket/common/constant"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"
	"log"
	"log/slog"
)

type handlerFunc func(ctx context.Context, msg []byte) error

// consume pulls from a durable consumer on st and dispatches by subject until ctx is done.
// A handler error naks the message with queue.<name>.nak_delay so it is redelivered.
func consume(ctx context.Context, cfg *viper.Viper, st jetstream.Stream, name, filter string, handlers map[string]handlerFunc) {
	prefix := "queue." + name

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:" + name,
		FilterSubject: filter,
		MaxDeliver:    cfg.GetInt(prefix + ".max_deliver"),
		AckWait:       cfg.GetDuration(prefix + ".ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages()
	if err != nil {
		panic(err)
	}

	nakDelay := cfg.GetDuration(prefix + ".nak_delay")

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
					return
				}
				if err != nil {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				handler, ok := handlers[msg.Subject()]
				if !ok {
					slog.WarnContext(ctx, "no handler for subject", slog.String("subject", msg.Subject()))
					msg.Term()
					continue
				}

				if eventErr := handler(ctx, msg.Data()); eventErr != nil {
					msg.NakWithDelay(nakDelay)
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}
			}
		}
	}()

	slog.InfoContext(ctx, name+" queue consumer started")

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, name+" queue consumer stopped")
}
