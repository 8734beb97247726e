package registry

import (
	"testing"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T, r *Registry, name string) *ws2812bang.Device {
	t.Helper()
	d, err := ws2812bang.New(ws2812bang.NewSimPlatform(ws2812bang.BoardUno), ws2812bang.WithReporter(r.Reporter(name)))
	require.NoError(t, err)
	return d
}

func TestRegistry_AttachDetach(t *testing.T) {
	r := New()
	attached := make(chan AttachedEvent, 1)
	detached := make(chan DetachedEvent, 1)
	defer r.OnAttached(func(e AttachedEvent) { attached <- e })()
	defer r.OnDetached(func(e DetachedEvent) { detached <- e })()

	d := newDevice(t, r, "shelf")
	require.NoError(t, d.AttachPin(5, 3))

	select {
	case e := <-attached:
		assert.Equal(t, "shelf", e.Name)
		assert.Equal(t, uint8(5), e.Info.Pin)
		assert.Equal(t, 3, e.Info.Pixels)
		assert.Equal(t, ws2812bang.PinPort{Group: ws2812bang.PortD, Bit: 5}, e.Info.Port)
	case <-time.After(time.Second):
		t.Fatal("no attached event")
	}

	entries := r.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, "shelf", entries[0].Name)
	_, ok := r.Lookup("shelf")
	assert.True(t, ok)

	require.NoError(t, d.Detach())
	select {
	case e := <-detached:
		assert.Equal(t, "shelf", e.Name)
	case <-time.After(time.Second):
		t.Fatal("no detached event")
	}
	assert.Empty(t, r.Active())
}

func TestRegistry_Errors(t *testing.T) {
	r := New()
	received := make(chan ErrorEvent, 2)
	unsub := r.OnError(func(e ErrorEvent) { received <- e })
	defer unsub()

	d := newDevice(t, r, "desk")
	assert.Error(t, d.Attach([]byte{5}))
	assert.Error(t, d.AttachPin(99, 1))

	kinds := make(map[ws2812bang.ErrorKind]bool)
	for i := 0; i < 2; i++ {
		select {
		case e := <-received:
			assert.Equal(t, "desk", e.Name)
			assert.NotEmpty(t, e.Message)
			kinds[e.Kind] = true
		case <-time.After(time.Second):
			t.Fatal("missing error event")
		}
	}
	assert.True(t, kinds[ws2812bang.KindInvalidConfiguration])
	assert.True(t, kinds[ws2812bang.KindUnsupportedPlatform])
	assert.Equal(t, 2, r.Errors("desk"))
	assert.Empty(t, r.Active())
}

func TestRegistry_MultipleDevices(t *testing.T) {
	r := New()
	a := newDevice(t, r, "b-strip")
	b := newDevice(t, r, "a-strip")
	require.NoError(t, a.AttachPin(5, 1))
	require.NoError(t, b.AttachPin(6, 2))

	entries := r.Active()
	require.Len(t, entries, 2)
	assert.Equal(t, "a-strip", entries[0].Name)
	assert.Equal(t, "b-strip", entries[1].Name)
	assert.Equal(t, 0, r.Errors("a-strip"))
}
