// Package storage provides the key-value capability the form writes its final
// record to. Every backend exposes the same Store contract: a Set overwrites a
// key in a single step, so readers never observe a partially written value.
//
// Backends:
//   - MemoryStore keeps entries in process memory (default, tests).
//   - FileStore keeps every key in one JSON document on disk, similar to a
//     browser's local storage area.
//   - SQLiteStore keeps entries in a sqlite table managed by embedded
//     golang-migrate migrations.
package storage
