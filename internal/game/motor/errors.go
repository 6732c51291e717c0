package motor

import "errors"

// Spawn errors. New wraps these; check with errors.Is.
var (
	ErrNoConfig = errors.New("motor: no config")
	ErrNoBody   = errors.New("motor: no body")
	ErrNoCamera = errors.New("motor: no camera")
	ErrNoQuery  = errors.New("motor: no physics query")
)
