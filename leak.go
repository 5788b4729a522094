package tailvec

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var leakLogger atomic.Pointer[zerolog.Logger]

// SetLeakLogger enables leak diagnostics. While a logger is set, every
// TailVec created by SplitTail and every Drain is watched, and a warning is
// written to l if one becomes unreachable without Close. Passing nil turns
// diagnostics off for handles created afterwards.
func SetLeakLogger(l *zerolog.Logger) {
	leakLogger.Store(l)
}

// leakReport describes a handle at the time it was created. It must not
// reference the handle itself, or the handle would never become unreachable.
type leakReport struct {
	kind   string
	offset int
	size   int
}

func (r leakReport) log(l *zerolog.Logger) {
	ev := l.Warn().Str("kind", r.kind)
	switch r.kind {
	case "drain":
		ev = ev.Int("start", r.offset).Int("len", r.size)
	default:
		ev = ev.Int("split_offset", r.offset).Int("cap", r.size)
	}
	ev.Msg("tailvec: handle abandoned without Close, window elements leaked")
}

func reportLeak(r leakReport) {
	if l := leakLogger.Load(); l != nil {
		r.log(l)
	}
}

func (t *TailVec[T]) track() {
	if leakLogger.Load() == nil {
		return
	}
	r := leakReport{kind: "tailvec", offset: t.SplitOffset(), size: t.Cap()}
	t.cleanup = runtime.AddCleanup(t, reportLeak, r)
	t.tracked = true
}

func (d *Drain[T]) track() {
	if leakLogger.Load() == nil {
		return
	}
	r := leakReport{kind: "drain", offset: d.head, size: d.tail - d.head}
	d.cleanup = runtime.AddCleanup(d, reportLeak, r)
	d.tracked = true
}
