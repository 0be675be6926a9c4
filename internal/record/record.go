// Package record provides the labelled value built at program start.
package record

// Record holds an integer and a text label. Both are fixed at construction.
type Record struct {
	x    int
	name string
}

// New creates a Record from the given value and label.
func New(x int, name string) *Record {
	return &Record{
		x:    x,
		name: name,
	}
}

// X returns the integer passed to New.
func (r *Record) X() int {
	return r.x
}

// Name returns the label passed to New.
func (r *Record) Name() string {
	return r.name
}

// Calculate returns a + b*c. It does not read the receiver's fields.
func (r *Record) Calculate(a, b, c int) int {
	return Calculate(a, b, c)
}

// Calculate returns a + b*c using native int arithmetic.
func Calculate(a, b, c int) int {
	return a + b*c
}
