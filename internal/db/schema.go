package db

// SchemaSQL is the complete schema for fresh htscan installs. This is the
// single source of truth: adapter tests apply it via InitSchema against an
// in-memory database, so drift between repository code and schema fails
// immediately with "no such column".
const SchemaSQL = `
-- Application state (single serialized value per key)
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
