// Package ledger implements an append-only, hash chained log of analysis
// runs.
//
// # Core Components
//
// Blockchain: An append-only log of runs with SHA256 hash chaining for tamper
// detection.
//
// Block: A single run with its index, timestamp and the hash of the previous
// block.
//
// SQLiteStore: A Store keeping blocks in a SQLite database, so the chain
// survives between invocations.
//
// # Usage
//
// Use NewBlockchain for an in-memory chain, or Open to load and verify the
// chain kept in a Store before appending to it. Verify can be called at any
// time to ensure the chain remains intact.
package ledger
