package transfer

import "fmt"

// ValidationError reasons. The first three come back from the resolver
// boundary; the rest are produced by local pre-checks before any external
// call or mutation.
const (
	ReasonUnreachable       = "unreachable"
	ReasonNotFound          = "not_found"
	ReasonInvalidResponse   = "invalid_response"
	ReasonInvalidAccountNum = "invalid_account_number"
	ReasonInvalidBankCode   = "invalid_bank_code"
	ReasonBelowMinimum      = "below_minimum_amount"
	ReasonEmptyRecipient    = "empty_recipient_name"
)

// ValidationError rejects a transfer or resolution request. It is never used
// to smuggle a fabricated recipient identity past a failed resolution.
type ValidationError struct {
	Reason  string
	Message string
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("transfer validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("transfer validation failed: %s: %s", e.Reason, e.Message)
}
