package index

// Offset converts a signed 1-based index into a zero-based offset on an axis
// of the given length. It never clamps: 0 is ErrInvalidIndex and anything
// that lands outside [0, length) is ErrIndexOutOfRange.
func Offset(n, length int) (int, error) {
	var off int
	switch {
	case n > 0:
		off = n - 1
	case n < 0:
		off = n + length
	default:
		return 0, ErrInvalidIndex
	}
	if off < 0 || off >= length {
		return 0, ErrIndexOutOfRange
	}
	return off, nil
}

// Bounds resolves both edges of a range selector to zero-based offsets.
// Unbounded edges become the first and last offset of the axis.
func (s Selector) Bounds(axis Axis, length int) (lo, hi int, err error) {
	lo, hi = 0, length-1
	if s.Lo.Bounded {
		if lo, err = axisOffset(axis, s.Lo.Index, length); err != nil {
			return 0, 0, err
		}
	}
	if s.Hi.Bounded {
		if hi, err = axisOffset(axis, s.Hi.Index, length); err != nil {
			return 0, 0, err
		}
	}
	if lo > hi {
		return 0, 0, &RangeError{Axis: axis, Selector: s, Lo: lo, Hi: hi}
	}
	return lo, hi, nil
}

// Offsets expands a selector into the zero-based offsets it selects, in
// order.
func (s Selector) Offsets(axis Axis, length int) ([]int, error) {
	switch s.Kind {
	case SingleSelector:
		off, err := axisOffset(axis, s.Index, length)
		if err != nil {
			return nil, err
		}
		return []int{off}, nil
	case RangeSelector:
		lo, hi, err := s.Bounds(axis, length)
		if err != nil {
			return nil, err
		}
		offs := make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			offs = append(offs, i)
		}
		return offs, nil
	default:
		offs := make([]int, length)
		for i := range offs {
			offs[i] = i
		}
		return offs, nil
	}
}

func axisOffset(axis Axis, n, length int) (int, error) {
	off, err := Offset(n, length)
	if err != nil {
		return 0, &IndexError{Axis: axis, Index: n, Len: length, Err: err}
	}
	return off, nil
}
