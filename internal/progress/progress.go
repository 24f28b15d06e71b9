// Package progress reports workload-sampling progress to an observer,
// decoupling synthesis from any particular display.
package progress

import "github.com/cheggaaa/pb"

// Observer is notified as a workload batch is sampled (synth.SampleWorkload),
// so callers can swap in a bar, a log line, or nothing at all. The
// schedulers take no Observer and report no progress. SampleWorkload calls
// its Observer unconditionally, so it must not be nil; pass Noop instead.
type Observer interface {
	Start(total int)
	Advance(n int)
	Done()
}

// Noop discards every call. It is the default for non-interactive use (CI,
// library callers) where no terminal is attached.
type Noop struct{}

func (Noop) Start(int)  {}
func (Noop) Advance(int) {}
func (Noop) Done()       {}

// Bar reports progress on a terminal-attached bar.
type Bar struct {
	bar *pb.ProgressBar
}

// NewBar constructs an Observer backed by a cheggaaa/pb bar.
func NewBar() *Bar {
	return &Bar{}
}

func (b *Bar) Start(total int) {
	b.bar = pb.New(total)
	b.bar.Start()
}

func (b *Bar) Advance(n int) {
	if b.bar == nil {
		return
	}
	b.bar.Add(n)
}

func (b *Bar) Done() {
	if b.bar == nil {
		return
	}
	b.bar.Finish()
}
