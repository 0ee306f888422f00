package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dolthub/swiss"
	"github.com/google/uuid"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

// Manager keeps all live sessions. The swiss map is not safe for
// concurrent use, so the manager guards it; the sessions themselves
// carry their own locks.
type Manager struct {
	mu       sync.Mutex
	sessions *swiss.Map[string, *Session]
}

func NewManager() *Manager {
	return &Manager{
		sessions: swiss.NewMap[string, *Session](16),
	}
}

// Create starts a session: empty human fields plus a bot with its fleet
// already placed. The bot's placement can fail with ErrNoSpaceLeft when
// the fleet does not fit the field.
func (m *Manager) Create(conf field.Config) (*Session, error) {
	if err := conf.IsValid(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	bot := game.NewBot(rng)
	if err := bot.PlaceFleet(conf); err != nil {
		return nil, err
	}

	own, err := field.New(conf.W, conf.H)
	if err != nil {
		return nil, err
	}
	tracking, err := field.New(conf.W, conf.H)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.NewString(),
		Created:  time.Now(),
		rng:      rng,
		conf:     conf,
		own:      own,
		tracking: tracking,
		bot:      bot,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions.Put(s.ID, s)

	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.sessions.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Count()
}
