package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribe(t *testing.T) {
	hub := NewHub()
	hub.Publish(Event{Name: "nobody listening"})

	var got []string
	cancelA := hub.Subscribe(func(e Event) { got = append(got, "a:"+e.Name) })
	cancelB := hub.Subscribe(func(e Event) { got = append(got, "b:"+e.Name) })
	assert.Equal(t, 2, hub.Len())

	hub.Publish(Event{Name: "one"})
	assert.Equal(t, []string{"a:one", "b:one"}, got)

	cancelA()
	cancelA()
	assert.Equal(t, 1, hub.Len())

	hub.Publish(Event{Name: "two"})
	assert.Equal(t, []string{"a:one", "b:one", "b:two"}, got)

	cancelB()
	assert.Zero(t, hub.Len())
}

func TestHubChannelKeepsLatest(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Channel(1)
	defer cancel()

	hub.Publish(Event{Name: "first"})
	hub.Publish(Event{Name: "second"})
	hub.Publish(Event{Name: "third"})

	require.Len(t, ch, 1)
	assert.Equal(t, "third", (<-ch).Name)

	cancel()
	hub.Publish(Event{Name: "after cancel"})
	assert.Empty(t, ch)
}
