package diag

import "cablecam/core"

// RecorderCapacity mirrors gopper/core/debug.go's TimingRingSize: enough
// history for a post-mortem dump, not a full session log.
const RecorderCapacity = 32

// Recorder is an always-on, allocation-free capture of the last N events,
// independent of whether a Sink is attached or keeping up. It exists so a
// crash handler or REPL "dump" command can inspect recent history even if
// the Sink's queue has been dropping under load.
type Recorder struct {
	ring [RecorderCapacity]core.Event
	head int
	len  int
}

// Record appends events to the ring, overwriting the oldest once full.
func (r *Recorder) Record(events []core.Event) {
	for _, ev := range events {
		r.ring[r.head] = ev
		r.head = (r.head + 1) % RecorderCapacity
		if r.len < RecorderCapacity {
			r.len++
		}
	}
}

// Dump renders the ring oldest-first, for post-mortem inspection.
func (r *Recorder) Dump() []string {
	out := make([]string, 0, r.len)
	start := (r.head - r.len + RecorderCapacity) % RecorderCapacity
	for i := 0; i < r.len; i++ {
		out = append(out, Format(r.ring[(start+i)%RecorderCapacity]))
	}
	return out
}

// Clear empties the ring.
func (r *Recorder) Clear() {
	r.head, r.len = 0, 0
}
