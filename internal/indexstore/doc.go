// Package indexstore persists library index snapshots in SQLite so the
// games listing can be served without rescanning every library folder.
//
// One snapshot is kept per Steam install path. Save replaces it inside a
// single transaction; Latest rebuilds a library.Index from the stored rows
// in the order they were written. Schema changes ship as embedded
// migrations tracked in schema_migrations.
package indexstore
