package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	m "clutchly_backend/internals/features/husbandry/feeding/model"
)

/* =======================================================
   Level keys

   Stored level targets keep the wire format "<rackId>-<level>".
   Rack ids are UUIDs and contain hyphens themselves, so parsing
   splits on the LAST hyphen; the level suffix is always numeric.
   ======================================================= */

type levelKey struct {
	RackID uuid.UUID
	Level  int
}

func LevelTargetValue(rackID uuid.UUID, level int) string {
	return fmt.Sprintf("%s-%d", rackID, level)
}

func parseLevelKey(v string) (levelKey, error) {
	idx := strings.LastIndex(v, "-")
	if idx <= 0 || idx == len(v)-1 {
		return levelKey{}, fmt.Errorf("malformed level target %q", v)
	}
	rackID, err := uuid.Parse(v[:idx])
	if err != nil {
		return levelKey{}, fmt.Errorf("malformed level target %q: %w", v, err)
	}
	level, err := strconv.Atoi(v[idx+1:])
	if err != nil {
		return levelKey{}, fmt.Errorf("malformed level target %q: %w", v, err)
	}
	return levelKey{RackID: rackID, Level: level}, nil
}

/* =======================================================
   Target Resolver
   ======================================================= */

// ResolveTargets expands a schedule's heterogeneous target list into a
// de-duplicated set of reptile ids, walking the housing hierarchy with the
// CURRENT snapshot: a reptile moved into a targeted location after the
// schedule was created is picked up on the next resolution.
//
// A failed sub-query contributes zero reptiles and a warning; it never
// aborts resolution of the other target types.
func (s *Service) ResolveTargets(ctx context.Context, orgID uuid.UUID, targets []m.FeedingTargetModel) ([]uuid.UUID, []string) {
	var (
		directReptiles []uuid.UUID
		locationIDs    []uuid.UUID
		roomIDs        []uuid.UUID
		rackIDs        []uuid.UUID
		levelsByRack   = map[uuid.UUID][]int{}
		warnings       []string
	)

	for _, t := range targets {
		switch t.FeedingTargetType {
		case m.TargetReptile:
			id, err := uuid.Parse(t.FeedingTargetValue)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("reptile target %q is not a uuid", t.FeedingTargetValue))
				continue
			}
			// Included as-is, no existence check.
			directReptiles = append(directReptiles, id)
		case m.TargetLocation:
			id, err := uuid.Parse(t.FeedingTargetValue)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("location target %q is not a uuid", t.FeedingTargetValue))
				continue
			}
			locationIDs = append(locationIDs, id)
		case m.TargetRoom:
			id, err := uuid.Parse(t.FeedingTargetValue)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("room target %q is not a uuid", t.FeedingTargetValue))
				continue
			}
			roomIDs = append(roomIDs, id)
		case m.TargetRack:
			id, err := uuid.Parse(t.FeedingTargetValue)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("rack target %q is not a uuid", t.FeedingTargetValue))
				continue
			}
			rackIDs = append(rackIDs, id)
		case m.TargetLevel:
			key, err := parseLevelKey(t.FeedingTargetValue)
			if err != nil {
				warnings = append(warnings, err.Error())
				continue
			}
			levelsByRack[key.RackID] = append(levelsByRack[key.RackID], key.Level)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown target type %q", t.FeedingTargetType))
		}
	}

	seen := make(map[uuid.UUID]struct{})
	var resolved []uuid.UUID
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			resolved = append(resolved, id)
		}
	}

	add(directReptiles)

	// location targets: one hop
	if len(locationIDs) > 0 {
		ids, err := s.store.ReptileIDsByLocationIDs(ctx, orgID, locationIDs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("location targets failed: %v", err))
		} else {
			add(ids)
		}
	}

	// room targets: room → locations → reptiles
	if len(roomIDs) > 0 {
		locs, err := s.store.LocationIDsByRoomIDs(ctx, orgID, roomIDs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("room targets failed: %v", err))
		} else if len(locs) > 0 {
			ids, err := s.store.ReptileIDsByLocationIDs(ctx, orgID, locs)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("room targets failed: %v", err))
			} else {
				add(ids)
			}
		}
	}

	// rack targets: rack → locations → reptiles
	if len(rackIDs) > 0 {
		locs, err := s.store.LocationIDsByRackIDs(ctx, orgID, rackIDs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rack targets failed: %v", err))
		} else if len(locs) > 0 {
			ids, err := s.store.ReptileIDsByLocationIDs(ctx, orgID, locs)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("rack targets failed: %v", err))
			} else {
				add(ids)
			}
		}
	}

	// level targets: batched per rack (rack_id = X AND shelf_level IN levels)
	for rackID, levels := range levelsByRack {
		locs, err := s.store.LocationIDsByRackLevels(ctx, orgID, rackID, levels)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("level targets for rack %s failed: %v", rackID, err))
			continue
		}
		if len(locs) == 0 {
			continue
		}
		ids, err := s.store.ReptileIDsByLocationIDs(ctx, orgID, locs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("level targets for rack %s failed: %v", rackID, err))
			continue
		}
		add(ids)
	}

	return resolved, warnings
}
