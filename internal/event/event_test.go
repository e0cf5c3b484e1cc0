package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GridChanged, a)
	d.Subscribe(GridChanged, b)
	d.Subscribe(SizeChanged, b)

	d.Dispatch(Event{Type: GridChanged})
	d.Dispatch(Event{Type: SizeChanged, Data: 8})
	d.Dispatch(Event{Type: ExportFailed})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 2)
	assert.Equal(t, 8, b.got[1].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GridChanged, a)
	d.Subscribe(GridChanged, b)

	d.Unsubscribe(GridChanged, a)
	d.Unsubscribe(SizeChanged, b) // не подписан — ничего не происходит
	d.Dispatch(Event{Type: GridChanged})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(ColorSelected, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: ColorSelected})
	d.Dispatch(Event{Type: ColorSelected})
	assert.Equal(t, 2, calls)
}
