// Package scconst contains constants shared by the supply chain contract and
// its off-chain clients.
package scconst

const (
	// ErrUnauthorized is thrown when the caller lacks required role or
	// ownership.
	ErrUnauthorized = "unauthorized"
	// ErrNotFound is thrown when referenced company, product, recipe or
	// proposal does not exist.
	ErrNotFound = "not found"
	// ErrAlreadyExists is thrown on attempt to register a company twice.
	ErrAlreadyExists = "company already exists"
	// ErrDuplicateProduct is thrown when product ID or name is already taken.
	ErrDuplicateProduct = "duplicate product"
	// ErrDuplicateOwner is thrown when company is already listed as a
	// producer of the product.
	ErrDuplicateOwner = "duplicate owner"
	// ErrInsufficientBatch is thrown when requested quantity exceeds the
	// quantity recorded for the batch.
	ErrInsufficientBatch = "insufficient batch"
	// ErrQuantityMismatch is thrown when batch allocation doesn't sum up to
	// the requested quantity.
	ErrQuantityMismatch = "quantity mismatch"
	// ErrInvalidArgument is thrown on malformed arguments, e.g. parallel
	// arrays of different length.
	ErrInvalidArgument = "invalid argument"
)

const (
	// ConversionStrict requires every recipe prerequisite to be consumed for
	// the same number of output units.
	ConversionStrict = 0
	// ConversionLimiting lets a call consume only some of the recipe
	// prerequisites, the others are ignored. Every prerequisite consumed in
	// the call must still be spent for the same number of output units.
	ConversionLimiting = 1
)
