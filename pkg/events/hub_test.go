package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastDelivery(t *testing.T) {
	hub := NewHub(4)

	all, cancelAll := hub.Subscribe("")
	defer cancelAll()
	inst1, cancelInst1 := hub.Subscribe("inst-1")
	defer cancelInst1()
	inst2, cancelInst2 := hub.Subscribe("inst-2")
	defer cancelInst2()

	hub.Broadcast([]byte(`{"type":"new_message","instance_id":"inst-1"}`))

	require.Len(t, all.Ch, 1)
	require.Len(t, inst1.Ch, 1)
	assert.Empty(t, inst2.Ch)

	t.Run("malformed frames reach every subscriber", func(t *testing.T) {
		hub.Broadcast([]byte(`not json`))
		assert.Len(t, all.Ch, 2)
		assert.Len(t, inst1.Ch, 2)
		assert.Len(t, inst2.Ch, 1)
	})
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub(1)

	slow, cancel := hub.Subscribe("")
	defer cancel()
	require.Equal(t, 1, hub.ActiveSubscribers())

	hub.Broadcast([]byte(`{"type":"a"}`))
	hub.Broadcast([]byte(`{"type":"b"}`))

	assert.Equal(t, 0, hub.ActiveSubscribers())

	// The dropped channel still drains the buffered frame, then reads
	// closed.
	frame, ok := <-slow.Ch
	require.True(t, ok)
	assert.JSONEq(t, `{"type":"a"}`, string(frame))
	_, ok = <-slow.Ch
	assert.False(t, ok)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	hub := NewHub(4)

	_, cancel := hub.Subscribe("")
	cancel()
	cancel()
	assert.Equal(t, 0, hub.ActiveSubscribers())

	// Broadcasting after removal must not panic on the closed channel.
	hub.Broadcast([]byte(`{"type":"x"}`))
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(4)

	sub, cancel := hub.Subscribe("")
	defer cancel()

	hub.Close()
	_, ok := <-sub.Ch
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ActiveSubscribers())

	t.Run("subscribe after close yields a closed channel", func(t *testing.T) {
		late, lateCancel := hub.Subscribe("")
		defer lateCancel()
		_, ok := <-late.Ch
		assert.False(t, ok)
	})
}
