// Pandora web interface [LikesProvider] implementation
//
// Likes and station names are scraped from the same authenticated
// session the browser uses; there is no public API for them.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"

	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
	"golang.org/x/net/html"
)

const defaultPandoraBaseURL = "https://www.pandora.com"

const (
	pandoraLoginPath    = "/login.vm"
	pandoraLikesPath    = "/content/tracklikes"
	pandoraStationsPath = "/content/stations"

	// Successful logins respond with a meta refresh to the profile page.
	pandoraLoginMarker = "0;url=http://www.pandora.com/people/"
)

var byPrefixRe = regexp.MustCompile(`^by\s+`)

// PandoraService implements [LikesProvider] by scraping the Pandora web
// interface.
type PandoraService struct {
	baseURL    string
	httpClient *http.Client
	cookie     string
	loggedIn   bool
}

// NewPandoraService creates a Pandora scraping session with its own
// cookie jar.
func NewPandoraService(baseURL string) *PandoraService {
	if baseURL == "" {
		baseURL = defaultPandoraBaseURL
	}

	jar, _ := cookiejar.New(nil)
	return &PandoraService{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar},
	}
}

// Name returns the service name.
func (p *PandoraService) Name() string {
	return "Pandora"
}

// Authenticate logs into Pandora.
//
// With credentials["curl_path"] set, cookies are imported from a
// browser cURL command instead; email and password are ignored. A form
// login whose response lacks the profile redirect marker is treated as
// rejected credentials.
func (p *PandoraService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if curlPath := credentials["curl_path"]; curlPath != "" {
		headers, err := shared.ParseCurlFile(curlPath)
		if err != nil {
			return fmt.Errorf("failed to import session: %w", err)
		}
		if headers.Cookie == "" {
			return fmt.Errorf("%w: cURL command carries no cookies", shared.ErrInvalidCredentials)
		}
		p.cookie = headers.Cookie
		p.loggedIn = true
		return nil
	}

	email := credentials["email"]
	password := credentials["password"]
	if email == "" || password == "" {
		return fmt.Errorf("%w: pandora email and password required", shared.ErrMissingCredentials)
	}

	form := url.Values{
		"login_username": {email},
		"login_password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+pandoraLoginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read login response: %w", err)
	}

	if !strings.Contains(string(body), pandoraLoginMarker) {
		return fmt.Errorf("%w: pandora login rejected, check email and password", shared.ErrAuthFailed)
	}

	p.loggedIn = true
	return nil
}

// FetchLikes scrapes the paginated likes page and groups songs by
// station. Bookmarked tracks (no station element) land under the
// [Bookmarked] key. Pagination follows the cursor attributes of the
// show_more element until a page renders without one.
func (p *PandoraService) FetchLikes(ctx context.Context) (map[string][]models.Song, error) {
	if !p.loggedIn {
		return nil, shared.ErrNotAuthenticated
	}

	likes := make(map[string][]models.Song)
	likeIndex, thumbIndex := "0", "0"

	for {
		endpoint := fmt.Sprintf("%s%s?likeStartIndex=%s&thumbStartIndex=%s",
			p.baseURL, pandoraLikesPath, url.QueryEscape(likeIndex), url.QueryEscape(thumbIndex))

		doc, err := p.fetchDocument(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		for _, box := range findAllByClass(doc, "infobox-body") {
			title := strings.TrimSpace(text(findFirstElement(box, "h3")))
			artist := strings.TrimSpace(text(findFirstElement(box, "p")))
			artist = byPrefixRe.ReplaceAllString(artist, "")

			station := Bookmarked
			if el := findFirstByClass(box, "like_context_stationname"); el != nil {
				station = strings.TrimSpace(text(el))
			}

			likes[station] = append(likes[station], models.Song{Artist: artist, Title: title})
		}

		more := findFirstByClass(doc, "show_more")
		if more == nil {
			break
		}
		nextLike := attr(more, "data-nextlikestartindex")
		nextThumb := attr(more, "data-nextthumbstartindex")
		// A stuck or empty cursor pair would refetch the same page forever.
		if nextLike == likeIndex && nextThumb == thumbIndex {
			break
		}
		likeIndex, thumbIndex = nextLike, nextThumb
	}

	return likes, nil
}

// FetchStationNames scrapes the station listing into a set.
func (p *PandoraService) FetchStationNames(ctx context.Context) (map[string]bool, error) {
	if !p.loggedIn {
		return nil, shared.ErrNotAuthenticated
	}

	doc, err := p.fetchDocument(ctx, p.baseURL+pandoraStationsPath)
	if err != nil {
		return nil, err
	}

	stations := make(map[string]bool)
	for _, el := range findAllElements(doc, "h3") {
		if name := strings.TrimSpace(text(el)); name != "" {
			stations[name] = true
		}
	}

	return stations, nil
}

// fetchDocument issues an authenticated GET and parses the HTML body.
func (p *PandoraService) fetchDocument(ctx context.Context, fullURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if p.cookie != "" {
		req.Header.Set("Cookie", p.cookie)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pandora returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return doc, nil
}
