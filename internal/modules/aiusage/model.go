package aiusage

import "errors"

// ErrInsufficientTokens is returned when a user has no chat tokens remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of chat tokens granted per month when no
// allowance is configured.
const DefaultTokens = 100
