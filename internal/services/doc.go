// Package services implements the two collaborator interfaces the sync
// engine consumes: [LikesProvider] (Pandora) and [CatalogClient]
// (YouTube Music via proxy).
//
// # Pandora Implementation
//
// [PandoraService] scrapes the authenticated Pandora web interface. The
// likes page is paginated; each page carries cursor attributes on its
// "show more" element that seed the next request. A browser cURL
// command can be imported to reuse an existing session instead of the
// form login.
//
// # YouTube Music Implementation
//
// [YouTubeService] communicates with the FastAPI proxy server wrapping
// ytmusicapi. The auth_file path is sent via X-Auth-File header on each
// request, and requests are paced with a token-bucket rate limiter.
//
// A playlist entry's membership id (setVideoId) is distinct from the
// catalog track id (videoId); removal is keyed by membership id.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrAuthFailed] : credentials or session rejected
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrAPIRequest] : HTTP request failed
package services
