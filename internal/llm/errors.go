package llm

import "errors"

var (
	// ErrOllamaUnavailable means the model server could not be reached.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout means the call ran past its task timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the model answered but not in the requested
	// JSON shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted means every attempt failed with a non-network error.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrDisabled is returned by the disabled client.
	ErrDisabled = errors.New("llm disabled")
)
