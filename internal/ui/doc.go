// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for the likes sync:
//  1. [StationListView] : Browse the scraped station groups and toggle a selection
//  2. [ConfirmView] : Confirm the sync scope
//  3. [SyncView] : Monitor real-time progress updates
//  4. [ResultView] : Display the final report and any playlist failures
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the LikesEngine, providing non-blocking status reporting during the run.
//
// Keyboard navigation uses vim-style bindings (j/k, space, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
