package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Themes in keyword-source order
CREATE TABLE IF NOT EXISTS themes (
    theme_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_themes_position ON themes(position);

-- Keywords of a theme, original casing, duplicates allowed
CREATE TABLE IF NOT EXISTS theme_keywords (
    keyword_id INTEGER PRIMARY KEY AUTOINCREMENT,
    theme_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    keyword TEXT NOT NULL,
    FOREIGN KEY (theme_id) REFERENCES themes(theme_id) ON DELETE CASCADE,
    UNIQUE(theme_id, position)
);

CREATE INDEX IF NOT EXISTS idx_theme_keywords_theme ON theme_keywords(theme_id);

-- Where the current keyword set came from
CREATE TABLE IF NOT EXISTS imports (
    import_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    theme_count INTEGER NOT NULL,
    keyword_count INTEGER NOT NULL,
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
