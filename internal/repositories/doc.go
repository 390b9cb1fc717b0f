// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
//
// Key Implementations:
//   - [MatchRepository] : Good-match cache keyed by scraped (artist, title), soft-deletable
//   - [RunRepository] : Sync run history surfaced by the history command
//   - [MatchCacheAdapter] : tasks.MatchCache backed by MatchRepository
//
// Sequence numbers provide stable, human-readable ordering (e.g., match #42, run #15) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
