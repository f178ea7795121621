package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgQualityOutOfBounds = "quality out of bounds"
	ErrMsgLegendaryMutated   = "legendary item changed"
	ErrMsgItemOrderChanged   = "item order changed"
	ErrMsgInvalidItem        = "invalid item"
)

// Update errors. A bounds or legendary violation after a cycle means the
// rule engine is wrong, never that the caller passed bad input.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrQualityOutOfBounds = errors.New(ErrMsgQualityOutOfBounds)
	ErrLegendaryMutated   = errors.New(ErrMsgLegendaryMutated)
	ErrItemOrderChanged   = errors.New(ErrMsgItemOrderChanged)

	// Fixture errors
	ErrInvalidItem = errors.New(ErrMsgInvalidItem)
)
