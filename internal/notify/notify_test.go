package notify

import (
	"testing"
	"time"

	"github.com/dori/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(Change) { got = append(got, "a") })
	bus.Subscribe(func(Change) { got = append(got, "b") })
	bus.Subscribe(func(Change) { got = append(got, "c") })

	bus.Publish(Change{})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBusSequenceIncreases(t *testing.T) {
	bus := NewBus()
	var seqs []uint64
	bus.Subscribe(func(c Change) { seqs = append(seqs, c.Seq) })

	first := bus.Publish(Change{})
	bus.Publish(Change{Seq: 99})
	bus.Publish(Change{})

	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, []uint64{1, 2, 3}, seqs)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	stop := bus.Subscribe(func(Change) { calls++ })
	other := 0
	bus.Subscribe(func(Change) { other++ })
	require.Equal(t, 2, bus.Len())

	bus.Publish(Change{})
	stop()
	stop()
	bus.Publish(Change{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, bus.Len())
}

func TestPublishUsesSnapshot(t *testing.T) {
	bus := NewBus()
	var got []string
	var stopB func()

	bus.Subscribe(func(Change) {
		got = append(got, "a")
		stopB()
		bus.Subscribe(func(Change) { got = append(got, "late") })
	})
	stopB = bus.Subscribe(func(Change) { got = append(got, "b") })

	bus.Publish(Change{})
	assert.Equal(t, []string{"a", "b"}, got)

	got = nil
	bus.Publish(Change{})
	assert.Equal(t, []string{"a", "late"}, got)
}

func TestChangeTouches(t *testing.T) {
	c := Change{Projects: []string{"p1"}, Deleted: []string{"p2"}}
	assert.True(t, c.Touches("p1"))
	assert.True(t, c.Touches("p2"))
	assert.False(t, c.Touches("p3"))
	assert.True(t, Change{Reset: true}.Touches("p3"))
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want []string
	}{
		{
			name: "minimal",
			n:    Notification{Title: "Hello"},
			want: []string{"-u", "low", "-a", "portfolio", "Hello"},
		},
		{
			name: "full",
			n: Notification{
				Title:   "Award unlocked",
				Body:    "Add 10 items.",
				Urgency: UrgencyCritical,
				Timeout: 5 * time.Second,
				Icon:    "starred",
			},
			want: []string{"-u", "critical", "-t", "5000", "-i", "starred", "-a", "portfolio", "Award unlocked", "Add 10 items."},
		},
		{
			name: "normal",
			n:    Notification{Title: "T", Urgency: UrgencyNormal},
			want: []string{"-u", "normal", "-a", "portfolio", "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Args(tt.n))
		})
	}
}

func TestNotifierRespectsEnabled(t *testing.T) {
	var calls [][]string
	n := NewNotifier()
	n.run = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	}
	require.True(t, n.IsEnabled())

	n.SetEnabled(false)
	require.NoError(t, n.Send(Notification{Title: "muted"}))
	assert.Empty(t, calls)

	n.SetEnabled(true)
	award := model.Award{Name: "Committed", Description: "Add 10 items."}
	require.NoError(t, n.SendAwardUnlocked(award))
	require.Len(t, calls, 1)
	assert.Equal(t, "notify-send", calls[0][0])
	assert.Contains(t, calls[0], "Award unlocked: Committed")
	assert.Contains(t, calls[0], "Add 10 items.")
	assert.Contains(t, calls[0], "10000")
}
