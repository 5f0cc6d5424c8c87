// Package store provides SQLite-backed storage for the marketplace registry.
//
// Four record kinds live here:
//   - Users: seeded back-office accounts, looked up by exact login/password pair
//   - Markets: unique on the (neighborhood, time, day) natural key
//   - Vendors: belong to one market, optionally carry a photo filename
//   - Products: reference one market and one vendor independently
//
// The store is the sole owner of record identity: ids are assigned by SQLite
// AUTOINCREMENT on insert and records exist exactly as long as their row does.
//
// Every mutation commits immediately as its own statement. There is no
// multi-statement transaction spanning a service operation; callers that need
// compound behavior (photo save + row insert) sequence individual calls and
// accept the intermediate states.
//
// Read paths that feed display denormalize related names via joins and return
// the *Detail row types rather than the bare write-path structs.
//
// Lookup misses are not errors: single-record getters return (nil, nil).
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys left OFF: dangling market/vendor references are accepted
package store
