package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/likesync/internal/services"
	"github.com/desertthunder/likesync/internal/tasks"

	"github.com/desertthunder/likesync/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	StationListView ViewState = iota
	ConfirmView
	SyncView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	source       services.LikesProvider
	engine       *tasks.LikesEngine
	runOpts      tasks.RunOptions
	width        int
	height       int
	stationList  list.Model
	stations     []stationInfo
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	report       *models.SyncReport
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// runOpts carries the credentials and the dry-run flag; the station
// filter is filled in from the user's selection before the run starts.
func NewModel(ctx context.Context, source services.LikesProvider, engine *tasks.LikesEngine, runOpts tasks.RunOptions) *Model {
	return &Model{
		ctx:     ctx,
		view:    StationListView,
		source:  source,
		engine:  engine,
		runOpts: runOpts,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by scraping the station groups.
func (m *Model) Init() tea.Cmd {
	return m.fetchStations()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.stationList.Width() == 0 {
			m.stationList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case StationListView:
			return m.handleStationListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case stationsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.stations = msg.stations
		items := make([]list.Item, len(msg.stations))
		for i, station := range msg.stations {
			items[i] = stationItem{station: station}
		}
		m.stationList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.stationList.Title = "Pandora Stations"
		m.stationList.SetSize(m.width-4, m.height-8)
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case syncCompleteMsg:
		m.report = msg.report
		m.err = msg.err
		m.view = ResultView
		m.progressChan = nil
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case StationListView:
		return m.renderStationList()
	case ConfirmView:
		return m.renderConfirm()
	case SyncView:
		return m.renderSync()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleStationListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		index := m.stationList.Index()
		if selected, ok := m.stationList.SelectedItem().(stationItem); ok {
			selected.selected = !selected.selected
			return m, m.stationList.SetItem(index, selected)
		}
	case "enter":
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.stationList, cmd = m.stationList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = StationListView
		return m, nil
	case "y":
		m.view = SyncView
		return m, m.startSync()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = StationListView
		m.report = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == StationListView {
		m.stationList, cmd = m.stationList.Update(msg)
	}
	return m, cmd
}

// selectedStations returns the station keys the user toggled on; nil
// means no explicit selection, which the engine reads as all stations.
func (m *Model) selectedStations() []string {
	var selected []string
	for _, item := range m.stationList.Items() {
		if station, ok := item.(stationItem); ok && station.selected {
			selected = append(selected, station.station.Key)
		}
	}
	return selected
}

func (m *Model) fetchStations() tea.Cmd {
	return func() tea.Msg {
		if err := m.source.Authenticate(m.ctx, m.runOpts.SourceCredentials); err != nil {
			return stationsFetchedMsg{err: err}
		}

		likes, err := m.source.FetchLikes(m.ctx)
		if err != nil {
			return stationsFetchedMsg{err: err}
		}

		stations := make([]stationInfo, 0, len(likes))
		for key, songs := range likes {
			stations = append(stations, stationInfo{Key: key, Likes: len(songs)})
		}
		sort.Slice(stations, func(i, j int) bool { return stations[i].Key < stations[j].Key })

		return stationsFetchedMsg{stations: stations}
	}
}

func (m *Model) startSync() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progressChan := m.progressChan

	opts := m.runOpts
	opts.Stations = m.selectedStations()

	go func() {
		report, err := m.engine.Run(m.ctx, opts, progressChan)
		m.report = report
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return syncCompleteMsg{report: m.report, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return syncCompleteMsg{report: m.report, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderStationList() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.stationList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	selected := m.selectedStations()
	scope := "all stations"
	if len(selected) > 0 {
		scope = fmt.Sprintf("%d selected stations", len(selected))
	}

	mode := ""
	if m.runOpts.DryRun {
		mode = " (dry run)"
	}

	title := styles.title.Render(fmt.Sprintf("Sync %s to YouTube Music%s?", scope, mode))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s", title, helpView)
}

func (m *Model) renderSync() string {
	title := styles.title.Render("Syncing Likes")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchLikes, tasks.FetchStations:
		phase = "Scraping Pandora..."
	case tasks.MatchSongs:
		phase = fmt.Sprintf("Matching songs (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.FetchPlaylists:
		phase = "Fetching playlists..."
	case tasks.ApplyPlaylist:
		phase = fmt.Sprintf("Reconciling playlists (%d/%d)", m.progress.Step, m.progress.Total)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Sync failed: %v\n\nPress r to retry, q to quit", m.err))
	}

	if m.report == nil {
		return styles.err.Render("No report available\n\nPress r to retry, q to quit")
	}

	title := styles.ok.Render("✓ Sync Complete!")
	info := fmt.Sprintf(
		"\nLikes: %d\nMatched: %d (spam: %d, missed: %d)\nAdded: %d  Removed: %d\nDuration: %s",
		m.report.LikeCount,
		m.report.MatchedCount,
		m.report.SpamCount,
		m.report.MissCount,
		m.report.Added,
		m.report.Removed,
		m.report.Duration().Round(time.Second),
	)

	var failed string
	if len(m.report.Failures) > 0 {
		failed = fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("%d playlists failed:", len(m.report.Failures))))
		for _, failure := range m.report.Failures {
			failed += fmt.Sprintf("\n  • %s: %v", failure.Playlist, failure.Err)
		}
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, failed, helpView)
}
