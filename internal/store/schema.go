package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    name                 TEXT PRIMARY KEY COLLATE NOCASE,
    icon                 TEXT NOT NULL DEFAULT '',
    color                TEXT NOT NULL DEFAULT '',
    is_default           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS expenses (
    id                   TEXT PRIMARY KEY,
    amount_cents         INTEGER NOT NULL CHECK (amount_cents >= 0),
    spent_at             TEXT NOT NULL,
    notes                TEXT NOT NULL DEFAULT '',
    category             TEXT,
    source_file          TEXT,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budgets (
    id                   TEXT PRIMARY KEY,
    amount_cents         INTEGER NOT NULL CHECK (amount_cents >= 0),
    period               TEXT NOT NULL,
    category             TEXT,
    start_date           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    target_cents         INTEGER NOT NULL,
    current_cents        INTEGER NOT NULL DEFAULT 0,
    deadline             TEXT,
    icon                 TEXT NOT NULL DEFAULT '',
    color                TEXT NOT NULL DEFAULT '',
    notes                TEXT NOT NULL DEFAULT '',
    created_at           TEXT NOT NULL,
    completed            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS import_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    expenses             INTEGER NOT NULL DEFAULT 0,
    imported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_spent_at ON expenses(spent_at);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
CREATE INDEX IF NOT EXISTS idx_expenses_source ON expenses(source_file);
`
