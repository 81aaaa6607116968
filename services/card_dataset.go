package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pokedeck-seed/models"
	"pokedeck-seed/utils"
)

const r2Scheme = "r2://"

// CardRecord is one entry of the static card dataset (data/pokemon.json).
type CardRecord struct {
	Name          string `json:"name"`
	HP            int    `json:"hp"`
	Attack        int    `json:"attack"`
	Type          string `json:"type"`
	PokedexNumber int    `json:"pokedexNumber"`
}

// ObjectFetcher downloads a dataset object by key. utils.R2Client implements it.
type ObjectFetcher interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// LoadCardDataset reads and validates the dataset at source, which is either a
// local path or an "r2://<key>" object fetched through fetcher.
func LoadCardDataset(ctx context.Context, source string, fetcher ObjectFetcher) ([]CardRecord, error) {
	var (
		raw []byte
		err error
	)

	if key, ok := strings.CutPrefix(source, r2Scheme); ok {
		if fetcher == nil {
			return nil, fmt.Errorf("%w: %s requested but no R2 client is configured", ErrDatasetUnreadable, source)
		}
		raw, err = fetcher.Download(ctx, key)
	} else {
		raw, err = utils.ReadLocalFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnreadable, source, err)
	}

	records, err := ParseCardDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return records, nil
}

// ParseCardDataset decodes a JSON array of card records and validates every entry.
// Type names are normalised onto the enumeration; unknown types reject the dataset.
func ParseCardDataset(raw []byte) ([]CardRecord, error) {
	var records []CardRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetInvalid, err)
	}

	seen := make(map[int]string, len(records))
	for i := range records {
		r := &records[i]
		r.Name = strings.TrimSpace(r.Name)

		switch {
		case r.Name == "":
			return nil, fmt.Errorf("%w: record %d has no name", ErrDatasetInvalid, i)
		case r.HP <= 0:
			return nil, fmt.Errorf("%w: record %d (%s) has hp %d", ErrDatasetInvalid, i, r.Name, r.HP)
		case r.Attack < 0:
			return nil, fmt.Errorf("%w: record %d (%s) has attack %d", ErrDatasetInvalid, i, r.Name, r.Attack)
		case r.PokedexNumber <= 0:
			return nil, fmt.Errorf("%w: record %d (%s) has pokedexNumber %d", ErrDatasetInvalid, i, r.Name, r.PokedexNumber)
		}

		t, ok := models.ParsePokemonType(r.Type)
		if !ok {
			return nil, fmt.Errorf("%w: record %d (%s) has unknown type %q", ErrDatasetInvalid, i, r.Name, r.Type)
		}
		r.Type = string(t)

		if other, dup := seen[r.PokedexNumber]; dup {
			return nil, fmt.Errorf("%w: pokedexNumber %d used by both %s and %s", ErrDatasetInvalid, r.PokedexNumber, other, r.Name)
		}
		seen[r.PokedexNumber] = r.Name
	}

	return records, nil
}
