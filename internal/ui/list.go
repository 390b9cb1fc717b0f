package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = stationItem{}

// stationInfo is one selectable station group: the raw station key
// (empty string for bookmarked tracks) plus its liked song count.
type stationInfo struct {
	Key   string
	Likes int
}

func (s stationInfo) displayName() string {
	if s.Key == "" {
		return "Bookmarked Tracks"
	}
	return s.Key
}

// stationItem wraps [stationInfo] to implement [list.Item].
type stationItem struct {
	station  stationInfo
	selected bool
}

func (i stationItem) FilterValue() string { return i.station.displayName() }

func (i stationItem) Title() string {
	marker := "[ ]"
	if i.selected {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, i.station.displayName())
}

func (i stationItem) Description() string {
	return fmt.Sprintf("%d liked songs", i.station.Likes)
}
