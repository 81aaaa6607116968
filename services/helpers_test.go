package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pokedeck-seed/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testArtworkBase = "https://img.test/artwork"

// newTestDB opens a private in-memory SQLite database with foreign keys enforced.
// A single connection keeps every goroutine on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// makeRecords builds n valid records with pokedex numbers 1..n.
func makeRecords(n int) []CardRecord {
	types := []string{"Grass", "Fire", "Water", "Electric", "Psychic"}
	records := make([]CardRecord, n)
	for i := range records {
		records[i] = CardRecord{
			Name:          fmt.Sprintf("Mon %d", i+1),
			HP:            40 + i,
			Attack:        30 + i,
			Type:          types[i%len(types)],
			PokedexNumber: i + 1,
		}
	}
	return records
}

// writeDataset stores v as JSON in a temp dir and returns the path.
func writeDataset(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "pokemon.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

type counts struct {
	Users, Cards, Decks, DeckCards int64
}

func countRows(t *testing.T, db *gorm.DB) counts {
	t.Helper()
	var c counts
	require.NoError(t, db.Model(&models.User{}).Count(&c.Users).Error)
	require.NoError(t, db.Model(&models.Card{}).Count(&c.Cards).Error)
	require.NoError(t, db.Model(&models.Deck{}).Count(&c.Decks).Error)
	require.NoError(t, db.Model(&models.DeckCard{}).Count(&c.DeckCards).Error)
	return c
}

// fakeFetcher serves objects from memory in place of R2.
type fakeFetcher struct {
	objects map[string][]byte
	keys    []string
}

func (f *fakeFetcher) Download(_ context.Context, key string) ([]byte, error) {
	f.keys = append(f.keys, key)
	body, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("NoSuchKey: %s", key)
	}
	return body, nil
}
