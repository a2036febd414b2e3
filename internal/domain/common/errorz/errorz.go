package errorz

import "errors"

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidTimeFormat  = errors.New("time must be in MM:SS.hh format")
	ErrInvalidStyle       = errors.New("unknown swim style")
	ErrInvalidDistance    = errors.New("distance not allowed for pool length")
	ErrInvalidPoolLength  = errors.New("pool length must be 15, 25 or 50")
	ErrUsernameTaken      = errors.New("username already taken")
)
