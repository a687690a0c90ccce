package rendering

// Fragment holds the three text streams a generator contributes to: the
// document preamble, the left column and the right column. Most generators
// fill exactly one of them.
type Fragment struct {
	Header string
	Left   string
	Right  string
}

// Merge appends other's streams to f's, preserving order. No separators are
// inserted; generators end their own output with whatever spacing they need.
func (f Fragment) Merge(other Fragment) Fragment {
	return Fragment{
		Header: f.Header + other.Header,
		Left:   f.Left + other.Left,
		Right:  f.Right + other.Right,
	}
}

// IsEmpty reports whether no stream has any content
func (f Fragment) IsEmpty() bool {
	return f.Header == "" && f.Left == "" && f.Right == ""
}
