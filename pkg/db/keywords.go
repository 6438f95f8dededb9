package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/theme-analyzer/models"
)

// Import describes the most recent keyword import.
type Import struct {
	ImportID     int64
	Source       string
	ThemeCount   int
	KeywordCount int
	ImportedAt   time.Time
}

// ImportKeywordMap replaces the stored keyword set with km in a single
// transaction. source is recorded for reference only.
func (db *DB) ImportKeywordMap(km *models.KeywordMap, source string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if _, err := tx.Exec("DELETE FROM theme_keywords"); err != nil {
		return fmt.Errorf("failed to clear keywords: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM themes"); err != nil {
		return fmt.Errorf("failed to clear themes: %w", err)
	}

	for pos, theme := range km.Themes() {
		result, err := tx.Exec("INSERT INTO themes (name, position) VALUES (?, ?)", theme, pos)
		if err != nil {
			return fmt.Errorf("failed to insert theme %s: %w", theme, err)
		}
		themeID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get theme ID: %w", err)
		}

		for kwPos, kw := range km.Keywords(theme) {
			_, err := tx.Exec(`
				INSERT INTO theme_keywords (theme_id, position, keyword)
				VALUES (?, ?, ?)
			`, themeID, kwPos, kw)
			if err != nil {
				return fmt.Errorf("failed to insert keyword %q of theme %s: %w", kw, theme, err)
			}
		}
	}

	_, err = tx.Exec(`
		INSERT INTO imports (source, theme_count, keyword_count)
		VALUES (?, ?, ?)
	`, source, km.Len(), km.KeywordCount())
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// LoadKeywordMap reads the stored keyword set in its original order.
// An empty database yields an empty map, not an error.
func (db *DB) LoadKeywordMap() (*models.KeywordMap, error) {
	rows, err := db.Query(`
		SELECT t.name, k.keyword
		FROM themes t
		JOIN theme_keywords k ON k.theme_id = t.theme_id
		ORDER BY t.position, k.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer rows.Close()

	var order []string
	grouped := make(map[string][]string)
	for rows.Next() {
		var theme, kw string
		if err := rows.Scan(&theme, &kw); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		if _, ok := grouped[theme]; !ok {
			order = append(order, theme)
		}
		grouped[theme] = append(grouped[theme], kw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords: %w", err)
	}

	km := models.NewKeywordMap()
	for _, theme := range order {
		km.Set(theme, grouped[theme])
	}
	return km, nil
}

// LatestImport returns the most recent import, or nil if nothing was imported.
func (db *DB) LatestImport() (*Import, error) {
	var imp Import
	err := db.QueryRow(`
		SELECT import_id, source, theme_count, keyword_count, imported_at
		FROM imports
		ORDER BY import_id DESC
		LIMIT 1
	`).Scan(&imp.ImportID, &imp.Source, &imp.ThemeCount, &imp.KeywordCount, &imp.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest import: %w", err)
	}
	return &imp, nil
}
