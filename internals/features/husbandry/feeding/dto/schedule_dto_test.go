package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

func intPtr(n int) *int { return &n }

func TestCreateScheduleIntervalRequiresStep(t *testing.T) {
	req := CreateFeedingScheduleRequest{
		FeedingScheduleName:       "royals",
		FeedingScheduleRecurrence: "interval",
		FeedingScheduleStartDate:  "2026-01-01",
	}
	var sched m.FeedingScheduleModel
	assert.Error(t, req.ApplyToModel(&sched))

	req.FeedingScheduleIntervalDays = intPtr(5)
	require.NoError(t, req.ApplyToModel(&sched))
	assert.Equal(t, 5, *sched.FeedingScheduleIntervalDays)
}

func TestCreateScheduleCustomRequiresDays(t *testing.T) {
	req := CreateFeedingScheduleRequest{
		FeedingScheduleName:       "weekend feeders",
		FeedingScheduleRecurrence: "custom",
		FeedingScheduleStartDate:  "2026-01-01",
	}
	var sched m.FeedingScheduleModel
	assert.Error(t, req.ApplyToModel(&sched))

	req.FeedingScheduleCustomDays = []int{0, 6}
	require.NoError(t, req.ApplyToModel(&sched))
	assert.Len(t, sched.CustomWeekdays(), 2)
}

func TestCreateScheduleEndBeforeStartRejected(t *testing.T) {
	end := "2025-12-01"
	req := CreateFeedingScheduleRequest{
		FeedingScheduleName:       "colubrids",
		FeedingScheduleRecurrence: "daily",
		FeedingScheduleStartDate:  "2026-01-01",
		FeedingScheduleEndDate:    &end,
	}
	var sched m.FeedingScheduleModel
	assert.Error(t, req.ApplyToModel(&sched))
}

func TestCreateTargetValueMustBeUUIDExceptLevel(t *testing.T) {
	var target m.FeedingTargetModel

	bad := CreateFeedingTargetRequest{FeedingTargetType: "reptile", FeedingTargetValue: "not-a-uuid"}
	assert.Error(t, bad.ApplyToModel(&target))

	ok := CreateFeedingTargetRequest{FeedingTargetType: "room", FeedingTargetValue: uuid.New().String()}
	require.NoError(t, ok.ApplyToModel(&target))

	level := CreateFeedingTargetRequest{
		FeedingTargetType:  "level",
		FeedingTargetValue: uuid.New().String() + "-3",
	}
	require.NoError(t, level.ApplyToModel(&target))
	assert.Equal(t, m.TargetLevel, target.FeedingTargetType)
}

func TestPatchScheduleEndBeforeStartRejected(t *testing.T) {
	var sched m.FeedingScheduleModel
	create := CreateFeedingScheduleRequest{
		FeedingScheduleName:       "boas",
		FeedingScheduleRecurrence: "weekly",
		FeedingScheduleStartDate:  "2026-01-15",
	}
	require.NoError(t, create.ApplyToModel(&sched))

	bad := "2026-01-01"
	patch := PatchFeedingScheduleRequest{FeedingScheduleEndDate: &bad}
	assert.Error(t, patch.ApplyPatch(&sched))

	good := "2026-02-01"
	patch = PatchFeedingScheduleRequest{FeedingScheduleEndDate: &good}
	require.NoError(t, patch.ApplyPatch(&sched))
	require.NotNil(t, sched.FeedingScheduleEndDate)
}
