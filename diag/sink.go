// Package diag turns core.Event values into text. The control core never
// formats or prints anything itself; diag is the non-blocking, drop-on-
// backpressure sink that gopper/core/debug.go implements as DebugAsync,
// rebuilt here as an owned value instead of a package-global so more than
// one controller can run with its own sink.
package diag

import (
	"fmt"

	"cablecam/core"
)

// Writer is the platform-specific output function: a UART line, a USB CDC
// write, a log file append. Formatting happens before Writer is called;
// Writer itself should not block for long.
type Writer func(string)

// Sink is a non-blocking, drop-on-backpressure event formatter. Events are
// queued from the 50Hz tick goroutine and drained by a background worker,
// the same split gopper/core/debug.go draws between RecordTiming (always
// succeeds) and DebugAsync (best-effort, drops under backpressure).
type Sink struct {
	writer Writer
	queue  chan core.Event
	done   chan struct{}
}

// NewSink starts a Sink with the given output writer and queue depth.
func NewSink(writer Writer, queueDepth int) *Sink {
	s := &Sink{
		writer: writer,
		queue:  make(chan core.Event, queueDepth),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Post enqueues events for formatting. Never blocks: if the queue is full,
// the event is dropped, matching DebugAsync's backpressure behavior.
func (s *Sink) Post(events []core.Event) {
	for _, ev := range events {
		select {
		case s.queue <- ev:
		default:
		}
	}
}

// Close stops the background worker after draining the queue.
func (s *Sink) Close() {
	close(s.queue)
	<-s.done
}

func (s *Sink) run() {
	defer close(s.done)
	for ev := range s.queue {
		s.writer(Format(ev))
	}
}

// Format renders a core.Event the way the original firmware's serial
// status lines read, per SPEC_FULL.md's supplemented-features section.
func Format(ev core.Event) string {
	switch ev.Kind {
	case core.EventNotNeutralAtStartup:
		return fmt.Sprintf(
			"Check the RC transmitter: stick channel reads %d, expected %d +- %d at startup",
			ev.RawValue, ev.NeutralPos, ev.NeutralRng)
	case core.EventEnteredOperational:
		return "safemode -> OPERATIONAL"
	case core.EventEnteredProgramming:
		return "safemode -> PROGRAMMING"
	case core.EventEndpointSet:
		return fmt.Sprintf("endpoint %d set at position %d", ev.PointIndex, ev.AtPosition)
	case core.EventPIDMonitor:
		return fmt.Sprintf("pid e=%.2f P=%.2f I=%.2f D=%.2f y=%.2f target=%d actual=%d safemode=%s",
			ev.Error, ev.PTerm, ev.ITerm, ev.DTerm, ev.Output, ev.PosTarget, ev.PosActual, ev.SafemodeTag)
	case core.EventCycleStatus:
		return fmt.Sprintf("duty=%d stick=%d speed=%d brake=%.1f esc=%d safemode=%s monitor=%s pos=%d",
			ev.Duty, ev.StickInput, ev.Speed, ev.DistanceToStop, ev.EscOut, ev.SafemodeTag, ev.MonitorTag, ev.PosActual)
	default:
		return "unrecognized diagnostic event"
	}
}
