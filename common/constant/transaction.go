package constant

import "time"

const (
	TransactionStatusWaitingPayment      = "WAITING_PAYMENT"
	TransactionStatusWaitingConfirmation = "WAITING_CONFIRMATION"
	TransactionStatusDone                = "DONE"
	TransactionStatusRejected            = "REJECTED"
	TransactionStatusCancelled           = "CANCELLED"
	TransactionStatusExpired             = "EXPIRED"
)

const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFixed      = "FIXED"
)

const (
	PointTypeEarned = "EARNED"
	PointTypeUsed   = "USED"
)

const (
	RoleCustomer  = "CUSTOMER"
	RoleOrganizer = "ORGANIZER"
)

const (
	DefaultPaymentWindow      = 2 * time.Hour
	DefaultConfirmationWindow = 72 * time.Hour
)

const (
	PointUsedDescription     = "Used for transaction on event: %s"
	PointRestoredDescription = "Restored from cancelled transaction #%d"
)

const (
	ReferralRewardPoint       = 10_000
	ReferralRewardDescription = "Referral Reward"
	ReferralRewardValidMonths = 3
	ReferralCouponPrefix      = "REF-"
	ReferralCouponAmount      = 50_000
	ReferralCouponValidMonths = 1
)
