package store

import (
	"errors"
	"strconv"
	"sync"

	"gamevault/backend/internal/models"
)

// ErrNotFound is returned when no game matches the requested id.
var ErrNotFound = errors.New("game not found")

// Repository defines the operations the HTTP layer needs from game storage.
// MemoryStore is the only implementation; the interface exists so a real
// database could be dropped in without touching the handlers.
type Repository interface {
	List() []models.Game
	Get(id string) (models.Game, error)
	Create(game models.Game) models.Game
	Update(id string, game models.Game) (models.Game, error)
	Delete(id string) error
	ToggleFavorite(id string) (models.Game, error)
}

// MemoryStore holds the game catalog in process memory, in insertion order.
// Ids come from a counter that only increases, so deleted ids are never
// reused. Handlers run concurrently, so every access goes through the mutex.
type MemoryStore struct {
	mu     sync.RWMutex
	games  []models.Game
	nextID int
}

// Games is the process-wide store instance, set up by Init.
var Games *MemoryStore

// Init creates the global store with the seed catalog. Tests call it to
// reset state between cases.
func Init() {
	Games = NewMemoryStore()
}

// NewMemoryStore returns a store pre-populated with the seed catalog:
// two games with ids "1" and "2", next id 3.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: []models.Game{
			{
				ID:          "1",
				Title:       "The Witcher 3: Wild Hunt",
				Description: "Open-world RPG following Geralt of Rivia on a hunt for his adopted daughter.",
				Genre:       "RPG",
				Platform:    "PC",
				Rating:      9.7,
				ReleaseDate: "2015-05-19",
				ImageURL:    "https://images.gamevault.example/witcher3.jpg",
				IsFavorite:  true,
			},
			{
				ID:          "2",
				Title:       "Hades",
				Description: "Rogue-like dungeon crawler where the prince of the underworld fights his way out.",
				Genre:       "Roguelike",
				Platform:    "Switch",
				Rating:      9.2,
				ReleaseDate: "2020-09-17",
				ImageURL:    "https://images.gamevault.example/hades.jpg",
				IsFavorite:  false,
			},
		},
		nextID: 3,
	}
}

// List returns every game in insertion order.
func (s *MemoryStore) List() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, len(s.games))
	copy(games, s.games)
	return games
}

// Get returns the game with the given id, or ErrNotFound.
func (s *MemoryStore) Get(id string) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, game := range s.games {
		if game.ID == id {
			return game, nil
		}
	}
	return models.Game{}, ErrNotFound
}

// Create appends a new game to the catalog. The incoming ID and IsFavorite
// are ignored: the id comes from the counter and favorites always start false.
func (s *MemoryStore) Create(game models.Game) models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = strconv.Itoa(s.nextID)
	game.IsFavorite = false
	s.nextID++
	s.games = append(s.games, game)
	return game
}

// Update replaces every field except ID and IsFavorite on the matching game,
// or returns ErrNotFound.
func (s *MemoryStore) Update(id string, game models.Game) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			game.ID = s.games[i].ID
			game.IsFavorite = s.games[i].IsFavorite
			s.games[i] = game
			return s.games[i], nil
		}
	}
	return models.Game{}, ErrNotFound
}

// Delete removes the matching game from the catalog, or returns ErrNotFound.
// The id counter is untouched, so the id is gone for good.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleFavorite flips IsFavorite on the matching game and returns the
// updated record, or ErrNotFound.
func (s *MemoryStore) ToggleFavorite(id string) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.games {
		if s.games[i].ID == id {
			s.games[i].IsFavorite = !s.games[i].IsFavorite
			return s.games[i], nil
		}
	}
	return models.Game{}, ErrNotFound
}
