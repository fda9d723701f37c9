package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

func TestParseLevelKey(t *testing.T) {
	rackID := uuid.New()

	key, err := parseLevelKey(LevelTargetValue(rackID, 3))
	require.NoError(t, err)
	assert.Equal(t, rackID, key.RackID)
	assert.Equal(t, 3, key.Level)

	// Rack ids contain hyphens; only the last segment is the level.
	_, err = parseLevelKey("not-a-uuid-5")
	assert.Error(t, err)
	_, err = parseLevelKey(rackID.String())
	assert.Error(t, err, "missing level suffix")
	_, err = parseLevelKey(rackID.String() + "-abc")
	assert.Error(t, err, "non-numeric level")
}

func TestResolveTargetsDirectAndLocation(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	direct := uuid.New()
	locID := uuid.New()
	housed := uuid.New()
	store.reptilesByLocation[locID] = []uuid.UUID{housed, direct} // direct also lives here

	ids, warnings := svc.ResolveTargets(context.Background(), orgID, []m.FeedingTargetModel{
		{FeedingTargetType: m.TargetReptile, FeedingTargetValue: direct.String()},
		{FeedingTargetType: m.TargetLocation, FeedingTargetValue: locID.String()},
	})

	assert.Empty(t, warnings)
	assert.ElementsMatch(t, []uuid.UUID{direct, housed}, ids, "duplicates collapse")
}

func TestResolveTargetsRoomAndRackHops(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	roomID := uuid.New()
	rackID := uuid.New()
	locA := uuid.New()
	locB := uuid.New()
	repA := uuid.New()
	repB := uuid.New()

	store.locationsByRoom[roomID] = []uuid.UUID{locA}
	store.locationsByRack[rackID] = []uuid.UUID{locB}
	store.reptilesByLocation[locA] = []uuid.UUID{repA}
	store.reptilesByLocation[locB] = []uuid.UUID{repB}

	ids, warnings := svc.ResolveTargets(context.Background(), orgID, []m.FeedingTargetModel{
		{FeedingTargetType: m.TargetRoom, FeedingTargetValue: roomID.String()},
		{FeedingTargetType: m.TargetRack, FeedingTargetValue: rackID.String()},
	})

	assert.Empty(t, warnings)
	assert.ElementsMatch(t, []uuid.UUID{repA, repB}, ids)
}

func TestResolveTargetsLevelIsolation(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	rackID := uuid.New()
	locLevel2 := uuid.New()
	locLevel3 := uuid.New()
	repLevel2 := uuid.New()
	repLevel3 := uuid.New()

	store.locationsByLevel[LevelTargetValue(rackID, 2)] = []uuid.UUID{locLevel2}
	store.locationsByLevel[LevelTargetValue(rackID, 3)] = []uuid.UUID{locLevel3}
	store.reptilesByLocation[locLevel2] = []uuid.UUID{repLevel2}
	store.reptilesByLocation[locLevel3] = []uuid.UUID{repLevel3}

	ids, warnings := svc.ResolveTargets(context.Background(), orgID, []m.FeedingTargetModel{
		{FeedingTargetType: m.TargetLevel, FeedingTargetValue: LevelTargetValue(rackID, 2)},
	})

	assert.Empty(t, warnings)
	assert.Equal(t, []uuid.UUID{repLevel2}, ids, "other shelves of the same rack stay out")
}

func TestResolveTargetsMalformedValuesWarn(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	svc := New(store)

	direct := uuid.New()

	ids, warnings := svc.ResolveTargets(context.Background(), orgID, []m.FeedingTargetModel{
		{FeedingTargetType: m.TargetReptile, FeedingTargetValue: direct.String()},
		{FeedingTargetType: m.TargetLocation, FeedingTargetValue: "not-a-uuid"},
		{FeedingTargetType: m.TargetLevel, FeedingTargetValue: "garbage"},
		{FeedingTargetType: m.TargetType("herd"), FeedingTargetValue: "x"},
	})

	assert.Equal(t, []uuid.UUID{direct}, ids)
	assert.Len(t, warnings, 3, "each bad target warns without aborting the rest")
}

func TestResolveTargetsQueryFailureWarnsAndContinues(t *testing.T) {
	orgID := uuid.New()
	store := newFakeStore()
	store.failReptileLookups = true
	svc := New(store)

	direct := uuid.New()
	locID := uuid.New()

	ids, warnings := svc.ResolveTargets(context.Background(), orgID, []m.FeedingTargetModel{
		{FeedingTargetType: m.TargetReptile, FeedingTargetValue: direct.String()},
		{FeedingTargetType: m.TargetLocation, FeedingTargetValue: locID.String()},
	})

	assert.Equal(t, []uuid.UUID{direct}, ids, "direct targets survive a failed hierarchy query")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "location targets failed")
}
