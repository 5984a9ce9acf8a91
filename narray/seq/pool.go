package seq

import (
	"sync"

	"github.com/cwbudde/algo-narray/narray/compare"
)

// Pool recycles scratch sequences used as destinations of the *Into
// methods. A Pool must not be copied after first use.
type Pool[T compare.Number] struct {
	retain int
	free   sync.Pool
}

// NewPool returns a Pool. Sequences whose capacity exceeds retain are
// dropped by Put instead of being kept; retain <= 0 keeps everything.
func NewPool[T compare.Number](retain int) *Pool[T] {
	return &Pool[T]{retain: retain}
}

// Get returns a zero-filled sequence of the given length.
func (p *Pool[T]) Get(length int) *Seq[T] {
	s, _ := p.free.Get().(*Seq[T])
	if s == nil {
		return New[T](length)
	}
	// Truncating first makes Resize clear every exposed element.
	s.Resize(0)
	s.Resize(length)
	return s
}

// Clone returns a pooled sequence holding a copy of src.
func (p *Pool[T]) Clone(src *Seq[T]) *Seq[T] {
	mustBeSet("clone", src)
	s := p.Get(0)
	s.CopyFrom(src)
	return s
}

// Put hands s back for reuse. The caller must not touch s afterwards.
// Put(nil) is a no-op.
func (p *Pool[T]) Put(s *Seq[T]) {
	if !p.keeps(s) {
		return
	}
	p.free.Put(s)
}

func (p *Pool[T]) keeps(s *Seq[T]) bool {
	if s == nil {
		return false
	}
	return p.retain <= 0 || s.Cap() <= p.retain
}
