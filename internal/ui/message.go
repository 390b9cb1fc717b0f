package ui

import (
	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/tasks"
)

// stationsFetchedMsg carries the scraped station groups after the
// initial likes fetch.
type stationsFetchedMsg struct {
	stations []stationInfo
	err      error
}

// progressUpdateMsg wraps one engine progress event.
type progressUpdateMsg tasks.ProgressUpdate

// syncCompleteMsg carries the final report once the run goroutine ends.
type syncCompleteMsg struct {
	report *models.SyncReport
	err    error
}
