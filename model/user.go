package model

type UserReferredEventMessage struct {
	ReferrerID          int64  `json:"referrer_id" validate:"required,gt=0"`
	RefereeID           int64  `json:"referee_id" validate:"required,gt=0,nefield=ReferrerID"`
	RefereeReferralCode string `json:"referee_referral_code" validate:"required,max=20"`
}
