package core

import "errors"

// Orders errors
var (
	ErrOrderInvalidArgs = errors.New("order invalid args")
	ErrUnknownFlavor    = errors.New("flavor not in catalog")
)

// Tasks errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskInvalidArgs = errors.New("task invalid args")
)

// Machines errors
var (
	ErrMachineNotFound = errors.New("machine not found")
)
