package game

import "errors"

// Command rejection reasons. Commands wrap one of these with context, so
// callers should test with errors.Is. A rejected command leaves the game
// unchanged.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrIneligiblePairing = errors.New("ineligible pairing")
	ErrInvalidArgument   = errors.New("invalid argument")
)
