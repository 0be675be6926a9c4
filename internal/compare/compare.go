// Package compare writes the two-integer comparison followed by a count.
package compare

import (
	"fmt"
	"io"
)

// Messages written for each branch of the comparison.
const (
	MsgGreater        = "x is greater"
	MsgGreaterOrEqual = "y is greater or equal"
)

const (
	// DefaultLabel is used when no label is supplied.
	DefaultLabel = "default"
	// DefaultCount is the number of integers written after the message.
	DefaultCount = 10
)

// Options controls a single comparison.
type Options struct {
	Label string
	Count int
}

// Option modifies Options.
type Option func(*Options)

// WithLabel sets the label attached to the comparison.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// WithCount sets how many integers are written after the message.
func WithCount(n int) Option {
	return func(o *Options) {
		o.Count = n
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Label: DefaultLabel,
		Count: DefaultCount,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Branch returns the message Compare writes for x and y.
func Branch(x, y int) string {
	if x > y {
		return MsgGreater
	}

	return MsgGreaterOrEqual
}

// Sequence returns 0..n-1. A non-positive n yields an empty slice.
func Sequence(n int) []int {
	if n <= 0 {
		return []int{}
	}

	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	return seq
}

// Compare writes the branch message for x and y, then the integers
// 0 through Count-1, one per line.
func Compare(w io.Writer, x, y int, opts ...Option) error {
	o := NewOptions(opts...)

	if _, err := fmt.Fprintln(w, Branch(x, y)); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}

	for _, i := range Sequence(o.Count) {
		if _, err := fmt.Fprintln(w, i); err != nil {
			return fmt.Errorf("failed to write count: %w", err)
		}
	}

	return nil
}
