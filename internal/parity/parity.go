// Package parity selects and reports the even members of a sequence.
package parity

import (
	"fmt"
	"io"
)

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%2 == 0
}

// Evens returns the even members of data in their original order.
func Evens(data []int) []int {
	evens := make([]int, 0, len(data)/2+1)

	for _, item := range data {
		if IsEven(item) {
			evens = append(evens, item)
		}
	}

	return evens
}

// Line formats the report line for an even value.
func Line(n int) string {
	return fmt.Sprintf("%d is even", n)
}

// Report writes one line per even member of data.
func Report(w io.Writer, data []int) error {
	for _, item := range Evens(data) {
		if _, err := fmt.Fprintln(w, Line(item)); err != nil {
			return fmt.Errorf("failed to write %d: %w", item, err)
		}
	}

	return nil
}
