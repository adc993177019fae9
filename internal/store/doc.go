// Package store persists the username → password mapping.
//
// A Store always loads and saves the whole mapping; callers mutate a loaded
// copy and save it back. Backends:
//   - FileStore: one JSON file (users.json by default)
//   - PostgresStore: a credentials table, schema managed by goose
//   - S3Store: one JSON object in a bucket
//   - RedisStore: one Redis hash
//   - MemoryStore: process memory, for tests and throwaway sessions
//
// Missing or unreadable data (absent file, empty file, corrupt JSON, absent
// object) loads as an empty mapping. Transport and permission failures are
// returned as errors.
//
// Passwords are stored as given, in plaintext.
package store
