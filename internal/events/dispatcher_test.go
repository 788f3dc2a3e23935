package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherPublish(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventBriefingGenerated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.Date)
		return errors.New("first failed")
	})
	d.Subscribe(EventBriefingGenerated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.Date)
		return nil
	})
	d.Subscribe(EventRosterImported, func(context.Context, Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventBriefingGenerated, Date: "2024-05-01"})
	require.ErrorContains(t, err, "first failed")
	require.Equal(t, []string{"first:2024-05-01", "second:2024-05-01"}, got)

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventRecordFlagged}))
}
