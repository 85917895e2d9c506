package cron

import (
	"context"
	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log/slog"
	"sync"
	"time"
)

// releaseLeaseScript deletes the lease only while this instance still owns it.
const releaseLeaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// TransactionCron drives the expiry and stale-confirmation sweeps. Every instance runs the
// tickers, a redis lease makes sure only one of them sweeps per tick.
type TransactionCron struct {
	Cfg        *viper.Viper
	Cache      *redis.Client
	Sweeper    contract.TransactionSweeper
	InstanceID string
}

type sweepJob struct {
	name      string
	cfgPrefix string
	run       func(ctx context.Context) (int, error)
}

func (in TransactionCron) setDefaults() {
	in.Cfg.SetDefault("cron.transaction.expire.interval", constant.DefaultExpireInterval)
	in.Cfg.SetDefault("cron.transaction.expire.timeout", constant.DefaultExpireTimeout)
	in.Cfg.SetDefault("cron.transaction.cancel.interval", constant.DefaultCancelInterval)
	in.Cfg.SetDefault("cron.transaction.cancel.timeout", constant.DefaultCancelTimeout)
	in.Cfg.SetDefault("cron.transaction.lock_ttl", constant.DefaultCronLockTTL)
}

// Start runs every job on its own ticker until ctx is done. A slow run only delays its own job.
func (in TransactionCron) Start(ctx context.Context) {
	in.setDefaults()

	jobs := []sweepJob{
		{
			name:      constant.CronJobExpireTransactions,
			cfgPrefix: "cron.transaction.expire",
			run:       in.Sweeper.ExpireTransactions,
		},
		{
			name:      constant.CronJobCancelTransactions,
			cfgPrefix: "cron.transaction.cancel",
			run:       in.Sweeper.CancelTransactions,
		},
	}

	slog.Info("transaction cron started", slog.String("instance_id", in.InstanceID))

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.loop(ctx, job)
		}()
	}

	wg.Wait()

	slog.Info("transaction cron stopped")
}

func (in TransactionCron) loop(ctx context.Context, job sweepJob) {
	ticker := time.NewTicker(in.Cfg.GetDuration(job.cfgPrefix + ".interval"))
	defer ticker.Stop()

	in.runJob(ctx, job)

	for {
		select {
		case <-ticker.C:
			in.runJob(ctx, job)
		case <-ctx.Done():
			return
		}
	}
}

func (in TransactionCron) runJob(ctx context.Context, job sweepJob) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration(job.cfgPrefix+".timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	jobAttr := slog.String("job", job.name)

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "sweep job panicked", traceIdAttr, jobAttr, slog.Any(constant.LogFieldErr, r))
		}
	}()

	key := fmt.Sprintf(constant.CronJobLockKey, job.name)
	acquired, err := in.Cache.SetNX(ctx, key, in.InstanceID, in.Cfg.GetDuration("cron.transaction.lock_ttl")).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to acquire sweep lease", traceIdAttr, jobAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	if !acquired {
		slog.DebugContext(ctx, "sweep lease held by another instance", traceIdAttr, jobAttr)
		return
	}

	defer func() {
		// the job context may be spent, release with a fresh one
		releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer releaseCancel()

		if err := in.Cache.Eval(releaseCtx, releaseLeaseScript, []string{key}, in.InstanceID).Err(); err != nil {
			slog.WarnContext(ctx, "failed to release sweep lease", traceIdAttr, jobAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	count, err := job.run(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "sweep job failed", traceIdAttr, jobAttr, slog.Int("processed", count), slog.Any(constant.LogFieldErr, err))
		return
	}

	slog.DebugContext(ctx, "sweep job finished", traceIdAttr, jobAttr, slog.Int("processed", count))
}
