package cmd

import (
	"context"
	"event-ticket/common/constant"
	"event-ticket/common/jetstream"
	"event-ticket/common/otel"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	natsJetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s",
		username, password, host, port, database, timezone)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	config.MaxConns = int32(maxConn)
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(ctx context.Context, cfg *viper.Viper, conn *nats.Conn) (natsJetstream.JetStream, natsJetstream.Stream) {
	js, err := natsJetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	st, err := jetstream.CreateQueueStream(ctx, js, cfg.GetInt64("nats.stream.max_bytes"))
	if err != nil {
		log.Fatalln("failed to create stream", err)
	}

	return js, st
}

// newTracer installs the OTLP exporter. The returned func flushes pending spans.
func newTracer(ctx context.Context, cfg *viper.Viper, serviceName string) func() {
	tp, err := otel.NewTracerProvider(ctx, serviceName, cfg.GetString("otel.endpoint"))
	if err != nil {
		log.Fatalln("failed to init tracer", err)
	}

	if tp == nil {
		return func() {}
	}

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			slog.Error("failed to shutdown tracer", slog.Any(constant.LogFieldErr, err))
		}
	}
}

// startProfile writes cpu and heap profiles prefixed by name when env is dev.
func startProfile(cfg *viper.Viper, name string) func() {
	if cfg.GetString("env") != "dev" {
		return func() {}
	}

	cpu, err := os.Create(name + "-cpu.prof")
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	// Only one CPU profile may run per process, dev mode starts several commands.
	err = pprof.StartCPUProfile(cpu)
	if err != nil {
		log.Printf("could not start CPU profile: %v", err)
		cpu.Close()
		return func() {}
	}

	return func() {
		pprof.StopCPUProfile()
		cpu.Close()

		mem, err := os.Create(name + "-mem.prof")
		if err != nil {
			log.Printf("could not create memory profile: %v", err)
			return
		}
		defer mem.Close()

		if err := pprof.WriteHeapProfile(mem); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
