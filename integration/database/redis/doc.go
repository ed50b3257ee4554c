// Package redis provides Redis client initialization and the Redis-backed
// session store.
//
// Connect validates the connection URL, retries transient failures, and
// verifies connectivity with a ping before returning the client.
//
// SessionStore implements session.Store for multi-instance deployments. The
// single-session-per-principal invariant is enforced server-side: Save runs
// a Lua script that deletes the principal's previous token and writes the
// new session in one atomic step, mirroring the in-memory store's critical
// section. Key TTLs track the session expiration, so expired sessions vanish
// without a cleanup job.
package redis
