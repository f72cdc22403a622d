package event

import (
	"errors"
	"testing"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(CanvasCleared, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(CanvasCleared, ListenerFunc(func(Event) { order = append(order, "second") }))

	rec := &recorder{}
	d.Subscribe(CanvasExported, rec)

	d.Dispatch(Event{Type: CanvasCleared})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected delivery order %v", order)
	}
	if len(rec.got) != 0 {
		t.Errorf("listener received %d events of another type", len(rec.got))
	}

	d.Dispatch(Event{Type: CanvasExported, Path: "out.png"})
	if len(rec.got) != 1 || rec.got[0].Path != "out.png" {
		t.Errorf("expected one export event, got %+v", rec.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ExportFailed, a)
	d.Subscribe(ExportFailed, b)

	d.Unsubscribe(ExportFailed, a)
	d.Dispatch(Event{Type: ExportFailed, Err: errors.New("disk full")})

	if len(a.got) != 0 {
		t.Error("unsubscribed listener still received events")
	}
	if len(b.got) != 1 || b.got[0].Err == nil {
		t.Errorf("expected b to receive the failure, got %+v", b.got)
	}

	// отписка неизвестного слушателя ничего не ломает
	d.Unsubscribe(StrokeStarted, a)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, Canvas...)
	for _, typ := range Canvas {
		d.Dispatch(Event{Type: typ})
	}
	if len(rec.got) != len(Canvas) {
		t.Errorf("expected %d events, got %d", len(Canvas), len(rec.got))
	}
}
