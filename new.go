package periodic

// New creates an Interval from explicit unit counts and range.
// Returns an error if the configuration is invalid.
//
// With no options the result is the zero Interval, which is valid but does
// not recur (IsSet is false).
func New(opts ...Option) (Interval, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Interval{}, o.err
	}
	if err := validate(&o.interval); err != nil {
		return Interval{}, err
	}
	return o.interval, nil
}

func validate(iv *Interval) error {
	for _, n := range []int{iv.Days, iv.Months, iv.Years} {
		if n < 0 || n > maxStep {
			return ErrInvalidStep
		}
	}

	if !iv.Begin.IsZero() && !iv.End.IsZero() && iv.Begin.After(iv.End) {
		return ErrInvalidRange
	}

	return nil
}
