package bboxgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bboxgo/codec"
	"github.com/hupe1980/bboxgo/label"
)

var (
	// ErrUnknownLabel is returned when a category is not in the vocabulary.
	// It is label.ErrUnknownLabel, so ingestion failures match it too.
	ErrUnknownLabel = label.ErrUnknownLabel

	// ErrInvalidConfiguration is returned for out-of-domain arguments such as
	// a subsample fraction outside (0, 1) or a non-positive bin size.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrCorruptData is returned when a persisted collection is truncated or
	// malformed.
	ErrCorruptData = errors.New("corrupt data")

	// ErrIndexOutOfRange is returned for indexing or slicing past the bounds
	// of a collection.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrIndexOutOfBounds carries the offending index and the collection length.
// It matches ErrIndexOutOfRange with errors.Is.
type ErrIndexOutOfBounds struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ErrIndexOutOfBounds) Unwrap() error { return ErrIndexOutOfRange }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, codec.ErrCorruptData) {
		return fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	return err
}
