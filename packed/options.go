package packed

// Option configures an Array.
type Option func(o *options)

type options struct {
	strict bool
}

// WithStrict makes Set and Load reject values that do not fit into the
// array's bit width (ErrValueOutOfRange) instead of masking them.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}
