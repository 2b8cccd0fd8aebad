package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrJobNotOpen          = errors.New("job is not open for applications")
	ErrUnknownStatus       = errors.New("unknown application status")
)
