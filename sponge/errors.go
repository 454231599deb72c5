package sponge

import "errors"

// Construction errors, returned by Builder.Build.
var (
	ErrInvalidWidth      = errors.New("sponge: width must be one of 8, 16, 32, 64")
	ErrEvenGenerator     = errors.New("sponge: generator must be odd")
	ErrNonPositiveRounds = errors.New("sponge: soakingRounds and squeezingRounds must be positive")
	ErrBadInitialState   = errors.New("sponge: initialState must have exactly width entries")
)

// Dump/load errors, returned by Load.
var (
	ErrFieldCount      = errors.New("sponge: dump has the wrong number of fields")
	ErrMalformedField  = errors.New("sponge: dump field is not valid hex")
	ErrChecksumFailed  = errors.New("sponge: dump checksum does not match")
	ErrUnknownVersion  = errors.New("sponge: dump has an unsupported version")
	ErrWidthMismatch   = errors.New("sponge: dump width does not match this sponge's width")
	ErrFieldWidth      = errors.New("sponge: dump field has the wrong width for its declared size")
)
