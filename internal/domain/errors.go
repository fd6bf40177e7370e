package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClassification  = errors.New("classification failed")
	ErrTranscription   = errors.New("transcription failed")
	ErrInputValidation = errors.New("invalid input")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

type ErrorKind string

const (
	ErrorKindClassification  ErrorKind = "classification_error"
	ErrorKindTranscription   ErrorKind = "transcription_error"
	ErrorKindInputValidation ErrorKind = "input_validation_error"
	ErrorKindInternal        ErrorKind = "internal_error"
)

// PipelineError is the structured failure surfaced to callers of the pipeline.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *PipelineError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *PipelineError) sentinel() error {
	switch e.Kind {
	case ErrorKindClassification:
		return ErrClassification
	case ErrorKindTranscription:
		return ErrTranscription
	case ErrorKindInputValidation:
		return ErrInputValidation
	default:
		return errors.New(string(e.Kind))
	}
}

func NewClassificationError(err error) error {
	return &PipelineError{Kind: ErrorKindClassification, Message: "affect classification failed", Err: err}
}

// NewTranscriptionError keeps the underlying cause in the message.
func NewTranscriptionError(err error) error {
	return &PipelineError{Kind: ErrorKindTranscription, Message: "audio transcription failed", Err: err}
}

func NewInputValidationError(message string) error {
	return &PipelineError{Kind: ErrorKindInputValidation, Message: message}
}

// KindOf reports the pipeline error kind of err, or ErrorKindInternal.
func KindOf(err error) ErrorKind {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}
	return ErrorKindInternal
}
