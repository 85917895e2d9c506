package errs

import (
	"fmt"
	"net/http"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindInsufficientInventory
	KindInvalidVoucher
	KindVoucherExhausted
	KindInvalidCoupon
	KindInvalidPoints
	KindPaymentDeadlineExpired
	KindTicketTypeMismatch
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindInvalidState:
		return "InvalidState"
	case KindInsufficientInventory:
		return "InsufficientInventory"
	case KindInvalidVoucher:
		return "InvalidVoucher"
	case KindVoucherExhausted:
		return "VoucherExhausted"
	case KindInvalidCoupon:
		return "InvalidCoupon"
	case KindInvalidPoints:
		return "InvalidPoints"
	case KindPaymentDeadlineExpired:
		return "PaymentDeadlineExpired"
	case KindTicketTypeMismatch:
		return "TicketTypeMismatch"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// HttpStatus classifies a kind as client fault, not found or conflict.
func (k Kind) HttpStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState, KindInsufficientInventory:
		return http.StatusConflict
	case KindInvalidVoucher, KindVoucherExhausted, KindInvalidCoupon, KindInvalidPoints,
		KindPaymentDeadlineExpired, KindTicketTypeMismatch, KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain failure. Two errors match under errors.Is when their kinds are equal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrNotFound               = New(KindNotFound, "not found")
	ErrForbidden              = New(KindForbidden, "forbidden")
	ErrInvalidState           = New(KindInvalidState, "invalid state")
	ErrInsufficientInventory  = New(KindInsufficientInventory, "insufficient inventory")
	ErrInvalidVoucher         = New(KindInvalidVoucher, "invalid voucher")
	ErrVoucherExhausted       = New(KindVoucherExhausted, "voucher exhausted")
	ErrInvalidCoupon          = New(KindInvalidCoupon, "invalid coupon")
	ErrInvalidPoints          = New(KindInvalidPoints, "invalid points")
	ErrPaymentDeadlineExpired = New(KindPaymentDeadlineExpired, "payment deadline expired")
	ErrTicketTypeMismatch     = New(KindTicketTypeMismatch, "ticket type mismatch")
	ErrInvalidInput           = New(KindInvalidInput, "invalid input")
)
