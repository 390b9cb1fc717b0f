package tasks

import (
	"reflect"
	"testing"

	"github.com/desertthunder/likesync/internal/models"
)

func TestPlanReconciliation(t *testing.T) {
	remote := &models.RemotePlaylist{
		ID:   "PL1",
		Name: "Pandora",
		Entries: []models.PlaylistEntry{
			{EntryID: "set-a", TrackID: "a"},
			{EntryID: "set-b", TrackID: "b"},
			{EntryID: "set-c", TrackID: "c"},
		},
	}

	t.Run("missing playlist adds everything and removes nothing", func(t *testing.T) {
		plan := PlanReconciliation([]string{"b", "a"}, nil)
		if plan.PlaylistExists {
			t.Error("expected PlaylistExists false")
		}
		if !reflect.DeepEqual(plan.ToAdd, []string{"a", "b"}) {
			t.Errorf("expected sorted adds, got %v", plan.ToAdd)
		}
		if len(plan.ToRemove) != 0 {
			t.Errorf("expected no removals for missing playlist, got %v", plan.ToRemove)
		}
	})

	t.Run("identical sets are up to date", func(t *testing.T) {
		plan := PlanReconciliation([]string{"a", "b", "c"}, remote)
		if !plan.UpToDate() {
			t.Errorf("expected up-to-date plan, got %+v", plan)
		}
	})

	t.Run("diff produces minimal mutation set", func(t *testing.T) {
		plan := PlanReconciliation([]string{"a", "d"}, remote)
		if !reflect.DeepEqual(plan.ToAdd, []string{"d"}) {
			t.Errorf("expected add of d, got %v", plan.ToAdd)
		}
		if !reflect.DeepEqual(plan.ToRemove, []string{"set-b", "set-c"}) {
			t.Errorf("expected removal of stale memberships, got %v", plan.ToRemove)
		}
	})

	t.Run("duplicate desired ids collapse", func(t *testing.T) {
		plan := PlanReconciliation([]string{"d", "d", "d"}, remote)
		if !reflect.DeepEqual(plan.ToAdd, []string{"d"}) {
			t.Errorf("expected single add, got %v", plan.ToAdd)
		}
	})

	t.Run("removal keys every membership of a stale track", func(t *testing.T) {
		duplicated := &models.RemotePlaylist{
			ID: "PL2",
			Entries: []models.PlaylistEntry{
				{EntryID: "set-1", TrackID: "x"},
				{EntryID: "set-2", TrackID: "x"},
			},
		}
		plan := PlanReconciliation(nil, duplicated)
		if !reflect.DeepEqual(plan.ToRemove, []string{"set-1", "set-2"}) {
			t.Errorf("expected both memberships removed, got %v", plan.ToRemove)
		}
	})

	t.Run("empty desired on existing playlist removes all", func(t *testing.T) {
		plan := PlanReconciliation(nil, remote)
		if len(plan.ToAdd) != 0 {
			t.Errorf("expected no adds, got %v", plan.ToAdd)
		}
		if len(plan.ToRemove) != 3 {
			t.Errorf("expected 3 removals, got %v", plan.ToRemove)
		}
		if plan.UpToDate() {
			t.Error("plan with removals must not be up to date")
		}
	})
}
