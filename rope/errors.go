package rope

import "fmt"

// OutOfRange is the panic value of At, Slice, Split, Insert, Remove and
// IndexOf when the requested index falls outside the rope's valid bounds.
type OutOfRange struct {
	Index, Length int
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("rope: index %d out of range for length %d", e.Index, e.Length)
}

// InvalidArgument is the panic value for programmer errors that aren't
// bounds violations, such as negative counts.
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string {
	return "rope: invalid argument: " + e.Msg
}

func outOfRange(index, length int) error {
	return &OutOfRange{Index: index, Length: length}
}

func invalidArgument(msg string) error {
	return &InvalidArgument{Msg: msg}
}
