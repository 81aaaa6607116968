package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"pokedeck-seed/models"
	"pokedeck-seed/utils"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// FixturePassword is shared by every seeded account.
	FixturePassword = "password123"
	// FixturePasswordCost is deliberately low; these are dev accounts.
	FixturePasswordCost = 10
	// CardCreateConcurrency bounds in-flight card inserts so a large dataset
	// does not queue every row on the connection pool at once.
	CardCreateConcurrency = 16
)

// FixtureAccount is one predefined user created by the seed.
type FixtureAccount struct {
	Username string
	Email    string
}

// FixtureAccounts are created in this order and each receives one starter deck.
var FixtureAccounts = []FixtureAccount{
	{Username: "red", Email: "red@example.com"},
	{Username: "blue", Email: "blue@example.com"},
}

type SeedService struct {
	DB *gorm.DB

	// Dataset is a local path or an r2:// key.
	Dataset        string
	ArtworkBaseURL string
	Fetcher        ObjectFetcher

	mu  sync.Mutex
	rng *rand.Rand
}

// SeedResult summarises one completed run.
type SeedResult struct {
	Users     int
	Cards     int
	Decks     int
	DeckCards int
	Duration  int64 // milliseconds
}

func NewSeedService(db *gorm.DB, dataset, artworkBaseURL string, fetcher ObjectFetcher) *SeedService {
	return &SeedService{
		DB:             db,
		Dataset:        dataset,
		ArtworkBaseURL: artworkBaseURL,
		Fetcher:        fetcher,
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithRand replaces the deck-sampling RNG. Tests use it for reproducible decks.
func (s *SeedService) WithRand(rng *rand.Rand) *SeedService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
	return s
}

// Run loads the dataset, wipes the fixture tables and repopulates them.
// The dataset is read before anything is deleted, so a setup failure leaves the store as it was.
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	log.Println("🌱 Starting database seed...")

	records, err := LoadCardDataset(ctx, s.Dataset, s.Fetcher)
	if err != nil {
		return nil, err
	}

	if err := s.Reset(ctx); err != nil {
		return nil, err
	}

	users, err := s.SeedUsers(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Created users: %s %s", users[0].Username, users[1].Username)

	cards, err := s.SeedCards(ctx, records)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Created %d Pokemon cards", len(cards))

	result := &SeedResult{Users: len(users), Cards: len(cards)}
	for i := range users {
		deck, err := s.AssignStarterDeck(ctx, &users[i], cards)
		if err != nil {
			return nil, err
		}
		result.Decks++
		result.DeckCards += len(deck.Cards)
	}
	log.Printf("✅ Created starter decks for %s and %s", users[0].Username, users[1].Username)

	result.Duration = time.Since(start).Milliseconds()
	log.Printf("🎉 Database seeding completed in %dms", result.Duration)
	return result, nil
}

// Reset deletes every fixture row, children before parents.
func (s *SeedService) Reset(ctx context.Context) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{"deck_cards", &models.DeckCard{}},
		{"decks", &models.Deck{}},
		{"cards", &models.Card{}},
		{"users", &models.User{}},
	}

	db := s.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, t := range tables {
		res := db.Delete(t.model)
		if res.Error != nil {
			return fmt.Errorf("%w: clearing %s: %w", ErrStorage, t.name, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("🧹 Cleared %d rows from %s", res.RowsAffected, t.name)
		}
	}
	return nil
}

// SeedUsers bulk-creates FixtureAccounts and reads them back by email.
// The returned slice follows FixtureAccounts order.
func (s *SeedService) SeedUsers(ctx context.Context) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), FixturePasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash fixture password: %w", err)
	}

	batch := make([]models.User, 0, len(FixtureAccounts))
	for _, acc := range FixtureAccounts {
		batch = append(batch, models.User{
			Username: acc.Username,
			Email:    acc.Email,
			Password: string(hash),
		})
	}
	if err := s.DB.WithContext(ctx).Create(&batch).Error; err != nil {
		return nil, fmt.Errorf("%w: creating users: %w", ErrStorage, err)
	}

	users := make([]models.User, 0, len(FixtureAccounts))
	for _, acc := range FixtureAccounts {
		u, err := s.FindUserByEmail(ctx, acc.Email)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// FindUserByEmail is the post-condition lookup for seeded accounts.
// A missing row is reported as ErrFixtureMissing.
func (s *SeedService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: expected user %s after insert", ErrFixtureMissing, email)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: looking up user %s: %w", ErrStorage, email, err)
	}
	return &u, nil
}

// SeedCards creates one card per record concurrently and waits for all of them.
// The first failure cancels the remaining creates and is returned.
func (s *SeedService) SeedCards(ctx context.Context, records []CardRecord) ([]models.Card, error) {
	cards := make([]models.Card, len(records))

	for i, rec := range records {
		// Run feeds records from ParseCardDataset, which already normalised the
		// type; this guards direct callers passing raw records.
		t := models.PokemonType(rec.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %s has unknown type %q", ErrDatasetInvalid, rec.Name, rec.Type)
		}
		cards[i] = models.Card{
			Name:          rec.Name,
			Slug:          slug.Make(rec.Name),
			HP:            rec.HP,
			Attack:        rec.Attack,
			Type:          t,
			PokedexNumber: rec.PokedexNumber,
			ImgURL:        utils.ArtworkURL(s.ArtworkBaseURL, rec.PokedexNumber),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(CardCreateConcurrency)
	for i := range cards {
		card := &cards[i]
		g.Go(func() error {
			if err := s.DB.WithContext(gctx).Create(card).Error; err != nil {
				return fmt.Errorf("%w: creating card #%d %s: %w", ErrStorage, card.PokedexNumber, card.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// AssignStarterDeck creates a starter deck for user holding a random sample of pool.
// The deck row and its slots are written in one transaction, one slot at a time.
func (s *SeedService) AssignStarterDeck(ctx context.Context, user *models.User, pool []models.Card) (*models.Deck, error) {
	s.mu.Lock()
	selected := SampleStarterDeck(s.rng, pool, StarterDeckSize)
	s.mu.Unlock()

	deck := &models.Deck{
		Name:   models.StarterDeckName,
		UserID: user.ID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(deck).Error; err != nil {
			return fmt.Errorf("%w: creating deck for %s: %w", ErrStorage, user.Username, err)
		}

		slots := make([]models.DeckCard, 0, len(selected))
		for _, card := range selected {
			slot := models.DeckCard{DeckID: deck.ID, CardID: card.ID}
			if err := tx.Create(&slot).Error; err != nil {
				return fmt.Errorf("%w: adding %s to %s's deck: %w", ErrStorage, card.Name, user.Username, err)
			}
			slots = append(slots, slot)
		}
		deck.Cards = slots
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deck, nil
}
