package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product or duration not found")
	ErrPriceNotSet     = errors.New("no price set")

	// Purchase errors
	ErrQuantityOutOfRange  = errors.New("quantity out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrPurchaseBusy        = errors.New("purchase already in progress")

	// Quote errors
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrQuoteExpired   = errors.New("quote expired")
	ErrQuoteForbidden = errors.New("quote belongs to another user")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)
