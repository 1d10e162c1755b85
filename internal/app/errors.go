package app

import "errors"

// ErrQuit signals that the user requested the application to exit.
// The event loop treats it as a clean shutdown, not a failure.
var ErrQuit = errors.New("quit requested")
