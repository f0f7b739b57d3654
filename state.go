// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

// chunkSize is the number of records held per chunk. Once a chunk fills, a
// new one is linked at the tail and becomes the active chunk; already
// written records never move, so nothing on the hot path ever reallocates
// a record that has already been stored.
const chunkSize = 65536

// chunk is one node of the append-only record list backing State.records.
type chunk struct {
	n       int
	records [chunkSize]int64
	next    *chunk
}

// State is a mutable per-invocation measurement buffer, owned by the
// Driver and lent by exclusive reference to one registered Func for the
// duration of one entry-point tuple's execution.
type State struct {
	t0              int64
	timeElapsed     int64
	maxTime         int64
	iterationCount  int64
	head            chunk
	tail            *chunk
	pauseT0         int64
	args            []int64
	itemsProcessed  int64
	deviationFilter DeviationFilter
}

// newState builds a State ready for a single entry-point tuple invocation.
// maxTimeSeconds is converted to ticks via the platform's tick rate, the
// same "approximate CPU frequency probe" idea.
func newState(opts Options, args []int64) *State {
	s := &State{args: args, deviationFilter: opts.DeviationFilter}
	s.tail = &s.head
	s.SetMaxTime(opts.MaxTime)
	return s
}

// SetMaxTime re-sets the measurement budget, in seconds, converting to
// ticks via the current platform's tick rate.
func (s *State) SetMaxTime(seconds float64) {
	s.maxTime = int64(seconds * float64(ticksPerSecond()))
}

// SetItemsProcessed records a user-supplied throughput hint; it has no
// effect on timing or filtering, and is not currently surfaced by any
// Reporter (Row carries no throughput field), but is retained on
// State for benchmark bodies that want to report it via a
// future or custom Reporter.
func (s *State) SetItemsProcessed(n int64) {
	s.itemsProcessed = n
}

// ItemsProcessed returns the last value passed to SetItemsProcessed.
func (s *State) ItemsProcessed() int64 {
	return s.itemsProcessed
}

// Arg returns the i-th value of the current argument tuple, or 0 if i is
// out of range.
func (s *State) Arg(i int) int64 {
	if i < 0 || i >= len(s.args) {
		return 0
	}
	return s.args[i]
}

// Iterations returns the number of completed iterations so far.
func (s *State) Iterations() int64 {
	return s.iterationCount
}

// Elapsed returns the accumulated measured ticks across iterations so far.
func (s *State) Elapsed() int64 {
	return s.timeElapsed
}

// Start begins measuring one iteration. It must be matched by a call to
// Stop before the next call to Start.
//
//go:noinline
func (s *State) Start() {
	sfence()
	s.t0 = now()
	lfence()
}

// Stop ends the iteration begun by the most recent Start, records its
// duration, and advances the iteration count.
//
//go:noinline
func (s *State) Stop() {
	mfence()
	s.stop(now())
}

// stop performs the bookkeeping half of Stop given an already-read
// timestamp, factored out so tests can drive it with a synthetic clock.
func (s *State) stop(t int64) {
	dt := t - s.t0
	s.timeElapsed += dt
	c := s.tail
	c.records[c.n] = dt
	c.n++
	if c.n == chunkSize {
		next := &chunk{}
		c.next = next
		s.tail = next
	}
	s.iterationCount++
}

// Pause captures a timestamp to temporarily exclude the following region
// from measurement. It must be matched by Resume before the next Stop.
func (s *State) Pause() {
	s.pauseT0 = now()
}

// Resume adjusts t0 forward by the duration spent paused, so that duration
// is excluded from the iteration currently being timed.
func (s *State) Resume() {
	t1 := now()
	s.t0 += t1 - s.pauseT0
}

// Next reports whether the time budget permits another iteration. It is
// intended to be checked exactly once per iteration, immediately after
// Stop, since the exit edge is meant to be taken exactly once.
func (s *State) Next() bool {
	return s.timeElapsed <= s.maxTime
}

// Iter returns a range-over-func iterator: each step implicitly calls
// Start, yields to the loop body, then implicitly calls Stop and consults
// Next. The yielded value carries no information; only the fact of a new
// iteration matters.
//
// This module's go directive (1.21) predates range-over-func, so the
// iterator is called directly:
//
//	state.Iter()(func() bool {
//	    // measured region
//	    return true
//	})
func (s *State) Iter() func(yield func() bool) {
	return func(yield func() bool) {
		for {
			s.Start()
			cont := yield()
			s.Stop()
			if !cont || !s.Next() {
				return
			}
		}
	}
}

// records copies every stored duration into a fresh slice, in iteration
// order, without mutating the chunk list. This is the only place chunk
// memory is walked outside the hot path; it backs statistics reduction
// and defines what "count" and "records" mean for a reported Row.
func (s *State) recordsCopy() []int64 {
	out := make([]int64, 0, s.iterationCount)
	for c := &s.head; c != nil; c = c.next {
		out = append(out, c.records[:c.n]...)
	}
	return out
}
