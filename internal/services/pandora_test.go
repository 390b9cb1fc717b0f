package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/likesync/internal/shared"
)

func TestPandoraAuthenticate(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != pandoraLoginPath {
				t.Errorf("expected login path, got %s", r.URL.Path)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("failed to parse form: %v", err)
			}
			if r.FormValue("login_username") != "user@example.com" {
				t.Errorf("unexpected username %q", r.FormValue("login_username"))
			}
			fmt.Fprintf(w, `<meta http-equiv="refresh" content="%s">`, pandoraLoginMarker+"user")
		}))
		defer server.Close()

		svc := NewPandoraService(server.URL)
		err := svc.Authenticate(context.Background(), map[string]string{
			"email":    "user@example.com",
			"password": "secret",
		})
		if err != nil {
			t.Fatalf("expected successful login, got %v", err)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>Invalid username or password</body></html>`)
		}))
		defer server.Close()

		svc := NewPandoraService(server.URL)
		err := svc.Authenticate(context.Background(), map[string]string{
			"email":    "user@example.com",
			"password": "wrong",
		})
		if !errors.Is(err, shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc := NewPandoraService("")
		err := svc.Authenticate(context.Background(), map[string]string{})
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestPandoraFetchLikes(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		svc := NewPandoraService("")
		if _, err := svc.FetchLikes(context.Background()); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("groups songs by station across pages", func(t *testing.T) {
		pageOne := `<div class="infobox-body">
			<h3>Karma Police</h3>
			<p>by Radiohead</p>
			<div class="like_context_stationname">Radiohead Radio</div>
		</div>
		<div class="infobox-body">
			<h3>Dreams</h3>
			<p>by Fleetwood Mac</p>
		</div>
		<div class="show_more" data-nextlikestartindex="20" data-nextthumbstartindex="5"></div>`

		pageTwo := `<div class="infobox-body">
			<h3>No Surprises</h3>
			<p>by Radiohead</p>
			<div class="like_context_stationname">Radiohead Radio</div>
		</div>`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != pandoraLikesPath {
				t.Errorf("expected likes path, got %s", r.URL.Path)
			}
			switch r.URL.Query().Get("likeStartIndex") {
			case "0":
				fmt.Fprint(w, pageOne)
			case "20":
				if r.URL.Query().Get("thumbStartIndex") != "5" {
					t.Errorf("expected thumb cursor 5, got %s", r.URL.Query().Get("thumbStartIndex"))
				}
				fmt.Fprint(w, pageTwo)
			default:
				t.Errorf("unexpected cursor %s", r.URL.Query().Get("likeStartIndex"))
			}
		}))
		defer server.Close()

		svc := NewPandoraService(server.URL)
		svc.loggedIn = true

		likes, err := svc.FetchLikes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		station := likes["Radiohead Radio"]
		if len(station) != 2 {
			t.Fatalf("expected 2 station songs, got %d", len(station))
		}
		if station[0].Title != "Karma Police" || station[0].Artist != "Radiohead" {
			t.Errorf("unexpected first song %+v", station[0])
		}
		if station[1].Title != "No Surprises" {
			t.Errorf("unexpected second song %+v", station[1])
		}

		bookmarked := likes[Bookmarked]
		if len(bookmarked) != 1 {
			t.Fatalf("expected 1 bookmarked song, got %d", len(bookmarked))
		}
		if bookmarked[0].Artist != "Fleetwood Mac" {
			t.Errorf("expected by-prefix stripped, got %q", bookmarked[0].Artist)
		}
	})

	t.Run("stops when cursors do not advance", func(t *testing.T) {
		page := `<div class="infobox-body">
			<h3>Karma Police</h3>
			<p>by Radiohead</p>
		</div>
		<div class="show_more" data-nextlikestartindex="0" data-nextthumbstartindex="0"></div>`

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			fmt.Fprint(w, page)
		}))
		defer server.Close()

		svc := NewPandoraService(server.URL)
		svc.loggedIn = true

		likes, err := svc.FetchLikes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if requests != 1 {
			t.Errorf("expected a single fetch for a stuck cursor, got %d", requests)
		}
		if len(likes[Bookmarked]) != 1 {
			t.Errorf("expected the page to be consumed once, got %v", likes[Bookmarked])
		}
	})
}

func TestPandoraFetchStationNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pandoraStationsPath {
			t.Errorf("expected stations path, got %s", r.URL.Path)
		}
		fmt.Fprint(w, `<div><h3>Radiohead Radio</h3></div><div><h3>Jazz Radio</h3></div><h3>  </h3>`)
	}))
	defer server.Close()

	svc := NewPandoraService(server.URL)
	svc.loggedIn = true

	stations, err := svc.FetchStationNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stations) != 2 {
		t.Errorf("expected 2 stations, got %d", len(stations))
	}
	if !stations["Radiohead Radio"] || !stations["Jazz Radio"] {
		t.Errorf("missing expected stations: %v", stations)
	}
}
