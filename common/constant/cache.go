package constant

import "time"

const (
	CronJobLockKey = "cron:%s:lock"
)

const (
	CronJobExpireTransactions = "expire_transactions"
	CronJobCancelTransactions = "cancel_transactions"
)

const (
	DefaultExpireInterval = 5 * time.Minute
	DefaultExpireTimeout  = 4 * time.Minute
	DefaultCancelInterval = time.Hour
	DefaultCancelTimeout  = 10 * time.Minute
	DefaultCronLockTTL    = 10 * time.Minute
)
