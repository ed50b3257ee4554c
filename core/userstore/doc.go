// Package userstore defines the credential store adapter: lookup of a
// principal by login identifier and insertion of a new registration.
//
// The real database sits behind the Store interface. The core treats a
// duplicate key and any persistence-layer grammar or schema error the same
// way (registration did not happen, the caller reports zero-rows-affected
// semantics), so implementations only need to classify failures into
// ErrNotFound, ErrDuplicate, and ErrQueryFailed.
//
// MemoryStore backs tests and single-node use; a pgx-backed implementation
// lives in integration/database/pg.
package userstore
