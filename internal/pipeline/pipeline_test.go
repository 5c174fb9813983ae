package pipeline

import (
	"testing"
	"time"
)

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	sink := ChannelSink{Ch: ch}

	sink.OnEvent(Event{File: "a.js", Stage: StageParse, Status: StatusWorking})

	got := <-ch
	if got.File != "a.js" || got.Stage != StageParse || got.Status != StatusWorking {
		t.Errorf("event %+v", got)
	}

	// nil channel must be a safe no-op
	ChannelSink{}.OnEvent(Event{File: "b.js"})
}

func TestMultiSink(t *testing.T) {
	ch1 := make(chan Event, 1)
	ch2 := make(chan Event, 1)
	sink := MultiSink{ChannelSink{Ch: ch1}, nil, ChannelSink{Ch: ch2}}

	sink.OnEvent(Event{File: "a.js", Status: StatusDone})

	if got := <-ch1; got.File != "a.js" {
		t.Errorf("first sink got %+v", got)
	}
	if got := <-ch2; got.Status != StatusDone {
		t.Errorf("second sink got %+v", got)
	}
}

func TestEmitNilSink(t *testing.T) {
	// must not panic
	Emit(nil, Event{File: "a.js"})
}

func TestTimings(t *testing.T) {
	var tm Timings
	if tm.Duration(StageParse) != 0 {
		t.Error("empty timings should report zero")
	}

	tm.Set(StageParse, 10*time.Millisecond)
	tm.Set(StageEmit, 5*time.Millisecond)

	if tm.Duration(StageParse) != 10*time.Millisecond {
		t.Errorf("parse duration %v", tm.Duration(StageParse))
	}
	if tm.Total() != 15*time.Millisecond {
		t.Errorf("total %v", tm.Total())
	}

	var nilT *Timings
	nilT.Set(StageLex, time.Second) // no-op, must not panic
}
