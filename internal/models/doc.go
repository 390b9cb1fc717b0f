// Package models defines domain entities and persistence interfaces for the likesync tool.
//
// The package contains two categories of types:
//
// 1. Per-run value types built bottom-up during a sync and discarded afterwards:
//   - [Song] : Raw (artist, title) identity scraped from the source service
//   - [Candidate] : Target-catalog entry returned by search
//   - [MatchResult] : Three-way classification of a song against the catalog
//   - [RemotePlaylist] : Current playlist state fetched from the target service
//   - [ReconciliationPlan] : Minimal add/remove set for one playlist
//   - [SyncReport] : Aggregate outcome of a full run
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [CachedMatch] : Good matches cached across runs to skip repeat searches
//   - [SyncRun] : One row per completed sync shown by the history command
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
