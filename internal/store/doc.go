// Package store persists resolution runs and local CLI history.
//
// Three backends exist: a PostgreSQL run archive used by protectconfd, an
// in-memory archive used when no database is configured, and a SQLite file
// that records resolutions run from the protectconf CLI.
package store
