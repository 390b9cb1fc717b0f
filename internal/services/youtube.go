// YouTube Music [CatalogClient] implementation
//
// Communicates with the FastAPI proxy server running on port 8080.
// The proxy wraps the ytmusicapi Python library for YouTube Music
// operations.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
	"golang.org/x/time/rate"
)

const defaultYTBaseURL string = "http://localhost:8080"

// YouTubeArtist represents an artist in YouTube Music responses.
type YouTubeArtist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// YouTubeTrack represents a track in YouTube Music responses.
//
// VideoID is the catalog track identity; SetVideoID identifies one
// placement inside a playlist and is required to remove it.
type YouTubeTrack struct {
	VideoID     string          `json:"videoId"`
	Title       string          `json:"title"`
	Artists     []YouTubeArtist `json:"artists"`
	Duration    string          `json:"duration"`
	DurationSec int             `json:"duration_seconds"`
	SetVideoID  string          `json:"setVideoId,omitempty"`
}

// Candidate converts a proxy track payload into the domain type. A
// payload without an artists list yields an empty artist, which the
// matcher treats as a failed comparison.
func (t YouTubeTrack) Candidate() models.Candidate {
	c := models.Candidate{
		TrackID: t.VideoID,
		Title:   t.Title,
		EntryID: t.SetVideoID,
	}
	if len(t.Artists) > 0 {
		c.Artist = t.Artists[0].Name
	}
	return c
}

// YouTubeService implements [CatalogClient] for YouTube Music via the
// proxy. Requests are paced with a token-bucket limiter so a large
// likes history does not hammer the proxy.
type YouTubeService struct {
	baseURL    string
	authFile   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewYouTubeService creates a new YouTube Music service instance.
// requestsPerSecond of zero or less disables pacing.
func NewYouTubeService(baseURL string, requestsPerSecond float64) *YouTubeService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &YouTubeService{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		limiter:    limiter,
	}
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube Music"
}

// Authenticate stores the auth file path for subsequent requests and
// verifies it against the proxy's auth status endpoint.
//
// Expects credentials["auth_file"] to contain the path to browser.json.
func (y *YouTubeService) Authenticate(ctx context.Context, credentials map[string]string) error {
	authFile, ok := credentials["auth_file"]
	if !ok || authFile == "" {
		return fmt.Errorf("%w: missing auth_file in credentials", shared.ErrMissingCredentials)
	}

	y.authFile = authFile

	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := y.doRequest(ctx, http.MethodGet, "/auth/status", nil, &status); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	if !status.Authenticated {
		return fmt.Errorf("%w: proxy rejected auth file", shared.ErrAuthFailed)
	}

	return nil
}

func (y *YouTubeService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if y.limiter != nil {
		if err := y.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, y.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if y.authFile != "" {
		req.Header.Set("X-Auth-File", y.authFile)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("youtube music API error (status %d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("youtube music API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// SearchCatalog searches the song catalog, results ordered best-first.
//
// Calls GET /api/search?q={query}&filter=songs on the proxy.
func (y *YouTubeService) SearchCatalog(ctx context.Context, query string) ([]models.Candidate, error) {
	endpoint := fmt.Sprintf("/api/search?q=%s&filter=songs", url.QueryEscape(query))

	var results []YouTubeTrack
	if err := y.doRequest(ctx, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, len(results))
	for i, track := range results {
		candidates[i] = track.Candidate()
	}

	return candidates, nil
}

// ListPlaylists retrieves the user's playlists with their entries.
//
// Calls GET /api/library/playlists, then GET /api/playlists/{id} per
// playlist to resolve each entry's setVideoId.
func (y *YouTubeService) ListPlaylists(ctx context.Context) ([]models.RemotePlaylist, error) {
	var ytPlaylists []struct {
		PlaylistID string `json:"playlistId"`
		Title      string `json:"title"`
		Count      int    `json:"count"`
	}

	if err := y.doRequest(ctx, http.MethodGet, "/api/library/playlists", nil, &ytPlaylists); err != nil {
		return nil, err
	}

	playlists := make([]models.RemotePlaylist, 0, len(ytPlaylists))
	for _, ytp := range ytPlaylists {
		var detail struct {
			ID     string         `json:"id"`
			Title  string         `json:"title"`
			Tracks []YouTubeTrack `json:"tracks"`
		}

		endpoint := fmt.Sprintf("/api/playlists/%s", ytp.PlaylistID)
		if err := y.doRequest(ctx, http.MethodGet, endpoint, nil, &detail); err != nil {
			return nil, fmt.Errorf("failed to fetch playlist %q: %w", ytp.Title, err)
		}

		playlist := models.RemotePlaylist{ID: ytp.PlaylistID, Name: ytp.Title}
		for _, track := range detail.Tracks {
			playlist.Entries = append(playlist.Entries, models.PlaylistEntry{
				EntryID: track.SetVideoID,
				TrackID: track.VideoID,
				Artist:  track.Candidate().Artist,
				Title:   track.Title,
			})
		}

		playlists = append(playlists, playlist)
	}

	return playlists, nil
}

// CreatePlaylist creates an empty private playlist and returns its id.
//
// Calls POST /api/playlists on the proxy.
func (y *YouTubeService) CreatePlaylist(ctx context.Context, name string) (string, error) {
	createReq := struct {
		Title         string `json:"title"`
		PrivacyStatus string `json:"privacy_status"`
	}{
		Title:         name,
		PrivacyStatus: "PRIVATE",
	}

	var createResp struct {
		PlaylistID string `json:"playlist_id"`
	}

	if err := y.doRequest(ctx, http.MethodPost, "/api/playlists", createReq, &createResp); err != nil {
		return "", fmt.Errorf("failed to create playlist: %w", err)
	}

	return createResp.PlaylistID, nil
}

// AddSongs adds catalog tracks to a playlist in one batched call.
//
// Calls POST /api/playlists/{id}/items on the proxy.
func (y *YouTubeService) AddSongs(ctx context.Context, playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	addReq := struct {
		VideoIDs []string `json:"video_ids"`
	}{
		VideoIDs: trackIDs,
	}

	endpoint := fmt.Sprintf("/api/playlists/%s/items", playlistID)
	if err := y.doRequest(ctx, http.MethodPost, endpoint, addReq, nil); err != nil {
		return fmt.Errorf("failed to add tracks: %w", err)
	}

	return nil
}

// RemoveEntries removes playlist placements by membership id in one
// batched call.
//
// Calls POST /api/playlists/items/remove on the proxy.
func (y *YouTubeService) RemoveEntries(ctx context.Context, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return nil
	}

	removeReq := struct {
		SetVideoIDs []string `json:"set_video_ids"`
	}{
		SetVideoIDs: entryIDs,
	}

	if err := y.doRequest(ctx, http.MethodPost, "/api/playlists/items/remove", removeReq, nil); err != nil {
		return fmt.Errorf("failed to remove entries: %w", err)
	}

	return nil
}
