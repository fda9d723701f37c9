package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestPatchFeedingEventMarkFedStampsFedAt(t *testing.T) {
	ev := &m.FeedingEventModel{}
	now := time.Date(2026, time.January, 5, 12, 30, 0, 0, time.Local)

	req := PatchFeedingEventRequest{FeedingEventFed: boolPtr(true)}
	require.NoError(t, req.ApplyPatch(ev, now))

	assert.True(t, ev.FeedingEventFed)
	require.NotNil(t, ev.FeedingEventFedAt)
	assert.Equal(t, now, *ev.FeedingEventFedAt)
}

func TestPatchFeedingEventFedAtOnlyOnTransition(t *testing.T) {
	original := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.Local)
	ev := &m.FeedingEventModel{FeedingEventFed: true, FeedingEventFedAt: &original}

	// fed=true on an already fed event must not re-stamp.
	later := original.Add(4 * time.Hour)
	req := PatchFeedingEventRequest{FeedingEventFed: boolPtr(true)}
	require.NoError(t, req.ApplyPatch(ev, later))
	assert.Equal(t, original, *ev.FeedingEventFedAt)

	// unmark clears the stamp.
	req = PatchFeedingEventRequest{FeedingEventFed: boolPtr(false)}
	require.NoError(t, req.ApplyPatch(ev, later))
	assert.False(t, ev.FeedingEventFed)
	assert.Nil(t, ev.FeedingEventFedAt)
}

func TestPatchFeedingEventNotesAndFeederSize(t *testing.T) {
	ev := &m.FeedingEventModel{}
	now := time.Now()

	req := PatchFeedingEventRequest{
		FeedingEventNotes:        strPtr("  refused, will retry tomorrow  "),
		FeedingEventFeederSizeID: strPtr("b0b9f6d2-0c5a-4f4e-9a51-2e8a4c3d9f10"),
	}
	require.NoError(t, req.ApplyPatch(ev, now))
	require.NotNil(t, ev.FeedingEventNotes)
	assert.Equal(t, "refused, will retry tomorrow", *ev.FeedingEventNotes)
	require.NotNil(t, ev.FeedingEventFeederSizeID)

	// Empty strings clear both fields.
	req = PatchFeedingEventRequest{
		FeedingEventNotes:        strPtr(""),
		FeedingEventFeederSizeID: strPtr(""),
	}
	require.NoError(t, req.ApplyPatch(ev, now))
	assert.Nil(t, ev.FeedingEventNotes)
	assert.Nil(t, ev.FeedingEventFeederSizeID)

	req = PatchFeedingEventRequest{FeedingEventFeederSizeID: strPtr("nope")}
	assert.Error(t, req.ApplyPatch(ev, now))
}
