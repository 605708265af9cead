// Package machine - the parameter codec.
//
// Concrete machines keep their parameters in structured storage (bias
// vectors, weight matrices). The codec maps that storage onto the flat
// complex vector the contract exposes, in a fixed segment order, so NPar is
// stable for the lifetime of an instance and assignment is all-or-nothing.
package machine

import "fmt"

// codec flattens an ordered list of parameter segments into one vector.
// Segments alias the machine's structured storage, so writing through the
// codec updates the model in place.
type codec struct {
	holo Holomorphy
	segs [][]complex128
	npar int
}

// newCodec builds a codec over the given segments. Segment order defines the
// layout of the flat vector and must not change after construction.
func newCodec(holo Holomorphy, segs ...[]complex128) codec {
	c := codec{holo: holo, segs: segs}
	for _, s := range segs {
		c.npar += len(s)
	}
	return c
}

// nPar reports the flat-vector length.
func (c codec) nPar() int { return c.npar }

// get packs all segments into a fresh flat vector.
func (c codec) get() []complex128 {
	out := make([]complex128, 0, c.npar)
	for _, s := range c.segs {
		out = append(out, s...)
	}
	return out
}

// set unpacks p into the segments. Length is validated before any segment is
// touched, so a rejected vector leaves the model unchanged. RealProjected
// codecs drop the imaginary part of every slot on assignment.
func (c codec) set(p []complex128) error {
	if len(p) != c.npar {
		return fmt.Errorf("%w: parameter vector length %d, want %d",
			ErrInvalidArgument, len(p), c.npar)
	}
	k := 0
	for _, s := range c.segs {
		for i := range s {
			if c.holo == RealProjected {
				s[i] = complex(real(p[k]), 0)
			} else {
				s[i] = p[k]
			}
			k++
		}
	}
	return nil
}
