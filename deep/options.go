package deep

import "github.com/rs/zerolog"

// Option configures a [Comparer].
type Option func(*Comparer)

// Key sets the field used to compare objects and maps that appear as
// elements of a sequence.
func Key(name string) Option {
	return func(c *Comparer) { c.key = name }
}

// Sorted declares that input to [Comparer.Unique] is already sorted by its
// comparison value, so no sort is performed. Duplicates that are not
// adjacent in such input are kept.
func Sorted() Option {
	return func(c *Comparer) { c.sorted = true }
}

// IgnoreOrder makes array comparison insensitive to element order. Both
// sides are compared as sorted copies; the caller's arrays are not touched.
func IgnoreOrder() Option {
	return func(c *Comparer) { c.ignoreOrder = true }
}

// Shallow limits [Comparer.Flatten] to one level of nesting.
func Shallow() Option { return Depth(1) }

// Depth limits [Comparer.Flatten] to n levels of nesting. n <= 0 means no
// limit.
func Depth(n int) Option {
	return func(c *Comparer) { c.depth = n }
}

// WithLogger sets the logger used for debug tracing. The default discards
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Comparer) { c.log = l }
}

// Comparer carries the configuration shared by the structural operations.
type Comparer struct {
	key         string
	sorted      bool
	ignoreOrder bool
	depth       int
	log         zerolog.Logger
}

var std = New()

// New builds a Comparer from opts.
func New(opts ...Option) *Comparer {
	c := &Comparer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c with opts applied on top.
func (c *Comparer) With(opts ...Option) *Comparer {
	cp := *c
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// KeyName returns the configured comparison key, or "" when none is set.
func (c *Comparer) KeyName() string { return c.key }
