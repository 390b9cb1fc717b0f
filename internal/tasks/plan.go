package tasks

import (
	"sort"

	"github.com/desertthunder/likesync/internal/models"
)

// DesiredPlaylist is the target state for one playlist: the catalog
// track ids it should contain after the run. Order carries the source
// like order but has no effect on the computed plan.
type DesiredPlaylist struct {
	Name     string
	TrackIDs []string
}

// PlanReconciliation diffs the desired track set against the remote
// playlist state and returns the minimal mutation set.
//
// Duplicate desired ids collapse to one membership. A nil remote means
// the playlist does not exist yet: everything is an add and nothing is
// removed. Removal is keyed by membership id so only the stale
// placements go; both output slices are sorted.
func PlanReconciliation(desired []string, remote *models.RemotePlaylist) models.ReconciliationPlan {
	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	plan := models.ReconciliationPlan{PlaylistExists: remote != nil}

	var present map[string]bool
	if remote != nil {
		present = remote.TrackIDs()
	}

	for id := range desiredSet {
		if !present[id] {
			plan.ToAdd = append(plan.ToAdd, id)
		}
	}
	sort.Strings(plan.ToAdd)

	if remote == nil {
		return plan
	}

	stale := make(map[string]bool)
	for id := range present {
		if !desiredSet[id] {
			stale[id] = true
		}
	}

	plan.ToRemove = remote.EntryIDsFor(stale)
	sort.Strings(plan.ToRemove)

	return plan
}
