package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// PrefixTooSmallError reports a demand whose minimal block is larger than
// the whole base network.
type PrefixTooSmallError struct {
	Index      int
	Hosts      int
	Prefix     int
	BasePrefix int
}

func (e *PrefixTooSmallError) Error() string {
	return fmt.Sprintf("subnet %d (%d hosts) needs a /%d block, larger than the base /%d network",
		e.Index, e.Hosts, e.Prefix, e.BasePrefix)
}

// DoesNotFitError reports the first demand that no longer fits in the
// base network's remaining address space.
type DoesNotFitError struct {
	Index int
	Hosts int
}

func (e *DoesNotFitError) Error() string {
	return fmt.Sprintf("subnet %d (%d hosts) does not fit in the remaining address space", e.Index, e.Hosts)
}
