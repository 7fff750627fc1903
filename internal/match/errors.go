package match

import "errors"

// Runtime rejections. All are recoverable: a rejected command leaves
// state untouched and is surfaced to the issuer as an AbilityRejected
// event, never a match abort.
var (
	ErrInsufficientCharge = errors.New("insufficient charge")
	ErrAlreadyUnlocked    = errors.New("ability already unlocked")
	ErrNotUnlocked        = errors.New("ability not unlocked")
	ErrOnCooldown         = errors.New("ability on cooldown")
	ErrAlreadyActive      = errors.New("ability already active")
	ErrUnknownAbility     = errors.New("unknown ability")
)

// ErrInvalidCatalogEntry is load-time only and fatal: a match never
// starts against a malformed catalog.
var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// RejectReason converts a rejection error into the short token carried
// by AbilityRejected events and the wire protocol.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientCharge):
		return "insufficient_charge"
	case errors.Is(err, ErrAlreadyUnlocked):
		return "already_unlocked"
	case errors.Is(err, ErrNotUnlocked):
		return "not_unlocked"
	case errors.Is(err, ErrOnCooldown):
		return "on_cooldown"
	case errors.Is(err, ErrAlreadyActive):
		return "already_active"
	case errors.Is(err, ErrUnknownAbility):
		return "unknown_ability"
	default:
		return "rejected"
	}
}
