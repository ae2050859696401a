package sortkit

import (
	"fmt"
)

// OverflowKind identifies which bound an OverflowError violated.
type OverflowKind int

const (
	// KeyOverflow means an extracted key was outside [0, maxKey).
	KeyOverflow OverflowKind = iota
	// ElementOverflow means a radix sort element was not below scale^digits.
	ElementOverflow
	// BoundOverflow means scale^digits itself does not fit in 64 bits.
	BoundOverflow
)

func (k OverflowKind) String() string {
	switch k {
	case KeyOverflow:
		return "key overflow"
	case ElementOverflow:
		return "element overflow"
	case BoundOverflow:
		return "bound overflow"
	}
	return fmt.Sprintf("OverflowKind(%d)", int(k))
}

// OverflowError represents a key or element outside the declared bound of a
// key-bounded sort, or a bound that cannot be computed.
type OverflowError struct {
	// Kind tells which bound was violated
	Kind OverflowKind
	// Key is the offending key or element; unset for BoundOverflow
	Key uint64
	// Negative is set when the offending key was below zero
	Negative bool
	// Bound is the exclusive upper bound that was violated; unset for BoundOverflow
	Bound uint64
	// Context names the operation that failed
	Context string
}

func (e *OverflowError) Error() string {
	if e.Kind == BoundOverflow {
		return fmt.Sprintf("%s in %s: bound does not fit in 64 bits", e.Kind, e.Context)
	}
	if e.Negative {
		return fmt.Sprintf("%s in %s: key -%d is below 0", e.Kind, e.Context, e.Key)
	}
	return fmt.Sprintf("%s in %s: %d is not below %d", e.Kind, e.Context, e.Key, e.Bound)
}

// NewOverflowError creates an OverflowError for a key that is not below bound.
func NewOverflowError(kind OverflowKind, key, bound uint64, context string) error {
	return &OverflowError{Kind: kind, Key: key, Bound: bound, Context: context}
}

// newKeyOverflowError creates a KeyOverflow OverflowError for a signed key,
// reporting negative keys by magnitude.
func newKeyOverflowError(key, bound int, context string) error {
	e := &OverflowError{Kind: KeyOverflow, Key: uint64(key), Bound: uint64(bound), Context: context}
	if key < 0 {
		e.Negative = true
		e.Key = uint64(-int64(key))
	}
	return e
}

// DomainError represents a bucket sort key outside [0, 1).
type DomainError struct {
	// Key is the offending key
	Key float64
	// Index is the position of the element the key was extracted from
	Index int
	// Context names the operation that failed
	Context string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s: key %v at index %d is outside [0, 1)", e.Context, e.Key, e.Index)
}

// NewDomainError creates a DomainError
func NewDomainError(key float64, index int, context string) error {
	return &DomainError{Key: key, Index: index, Context: context}
}

// UnderflowError represents an operation on an empty priority queue.
type UnderflowError struct {
	// Op is the queue operation that was attempted
	Op string
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("heap underflow in %s", e.Op)
}

// NewUnderflowError creates an UnderflowError
func NewUnderflowError(op string) error {
	return &UnderflowError{Op: op}
}

// KeyOrderError represents an attempt to lower a key through an operation
// that may only raise it.
type KeyOrderError struct {
	// Index is the heap position of the key
	Index int
	// Current is the key stored at Index
	Current interface{}
	// Requested is the rejected new key
	Requested interface{}
}

func (e *KeyOrderError) Error() string {
	return fmt.Sprintf("new key %v is smaller than current key %v at index %d", e.Requested, e.Current, e.Index)
}

// NewKeyOrderError creates a KeyOrderError
func NewKeyOrderError(index int, current, requested interface{}) error {
	return &KeyOrderError{Index: index, Current: current, Requested: requested}
}

// IndexError represents a heap position outside the live heap.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// NewIndexError creates an IndexError
func NewIndexError(index, length int) error {
	return &IndexError{Index: index, Len: length}
}

// ComparisonError represents a panic raised by a comparison function
type ComparisonError struct {
	// Cause is the original panic value
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an invalid parameter
type ConfigError struct {
	// Field is the name of the parameter that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
