package game

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/pkg/uid"
)

const maxNameLength = 32

var defaultProfiles = [2]PlayerProfile{
	{Name: "Player 1", Color: "red"},
	{Name: "Player 2", Color: "gold"},
}

// SessionManager keeps every running game in memory, keyed by game ID.
type SessionManager struct {
	Sessions map[string]*GameSession

	defaultRows    int
	defaultColumns int
	now            func() time.Time
	mu             sync.RWMutex
}

func NewSessionManager(defaultRows, defaultColumns int) *SessionManager {
	if defaultRows == 0 {
		defaultRows = domain.DefaultRows
	}
	if defaultColumns == 0 {
		defaultColumns = domain.DefaultColumns
	}

	return &SessionManager{
		Sessions:       make(map[string]*GameSession),
		defaultRows:    defaultRows,
		defaultColumns: defaultColumns,
		now:            time.Now,
	}
}

func (sm *SessionManager) CreateSession(req CreateRequest) (*GameSession, error) {
	rows, columns := req.Rows, req.Columns
	if rows == 0 {
		rows = sm.defaultRows
	}
	if columns == 0 {
		columns = sm.defaultColumns
	}

	g, err := domain.NewGame(domain.Player1, domain.Player2, rows, columns)
	if err != nil {
		return nil, err
	}

	profiles := [2]PlayerProfile{
		normalizeProfile(req.Player1, defaultProfiles[0]),
		normalizeProfile(req.Player2, defaultProfiles[1]),
	}

	session := newGameSession(uid.GenerateGameID(), g, profiles, req.Device, sm.now())

	sm.mu.Lock()
	sm.Sessions[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s: %s vs %s on %dx%d (%s)",
		session.GameID, profiles[0].Name, profiles[1].Name, rows, columns, req.Device)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// DropPiece looks the game up and plays column for whoever's turn it is.
func (sm *SessionManager) DropPiece(gameID string, column int) (domain.Move, GameState, error) {
	session, err := sm.GetSession(gameID)
	if err != nil {
		return domain.Move{}, GameState{}, err
	}
	return session.DropPiece(column, sm.now())
}

// RemoveSession drops the game from memory and tells its listeners why.
func (sm *SessionManager) RemoveSession(gameID, reason string) error {
	sm.mu.Lock()
	session, exists := sm.Sessions[gameID]
	if exists {
		delete(sm.Sessions, gameID)
	}
	sm.mu.Unlock()

	if !exists {
		return ErrGameNotFound
	}

	log.Printf("[SESSION] Removing session %s (%s)", gameID, reason)
	session.close(reason, "")
	return nil
}

// Rematch starts a fresh game with the same players and board size once the
// previous one is over. The old session is closed and its listeners are pointed
// at the new game.
func (sm *SessionManager) Rematch(gameID string) (*GameSession, error) {
	old, err := sm.GetSession(gameID)
	if err != nil {
		return nil, err
	}

	// claim the old game so only one rematch can start from it
	old.mu.Lock()
	if old.Closed || old.rematched {
		old.mu.Unlock()
		return nil, ErrGameNotFound
	}
	if !old.game.IsFinished() {
		old.mu.Unlock()
		return nil, ErrGameInProgress
	}
	old.rematched = true
	req := CreateRequest{
		Player1: old.Profiles[0],
		Player2: old.Profiles[1],
		Rows:    old.game.Height(),
		Columns: old.game.Width(),
		Device:  old.Device,
	}
	old.mu.Unlock()

	session, err := sm.CreateSession(req)
	if err != nil {
		old.mu.Lock()
		old.rematched = false
		old.mu.Unlock()
		return nil, err
	}

	sm.mu.Lock()
	delete(sm.Sessions, gameID)
	sm.mu.Unlock()

	log.Printf("[SESSION] Rematch of %s started as %s", gameID, session.GameID)
	old.close("rematch", session.GameID)
	return session, nil
}

// GetActiveGames lists the games still being played, oldest first.
func (sm *SessionManager) GetActiveGames() []LiveGame {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Sessions))
	for _, s := range sm.Sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	games := make([]LiveGame, 0, len(sessions))
	for _, s := range sessions {
		s.mu.Lock()
		if !s.game.IsFinished() {
			games = append(games, LiveGame{
				GameID:    s.GameID,
				Player1:   s.Profiles[0].Name,
				Player2:   s.Profiles[1].Name,
				MoveCount: s.game.MoveCount(),
				Viewers:   len(s.listeners),
				StartedAt: s.CreatedAt,
			})
		}
		s.mu.Unlock()
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].StartedAt.Before(games[j].StartedAt)
	})
	return games
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Sessions)
}

// CleanupOldSessions evicts finished games older than finishedTTL and games nobody
// has moved in for staleTTL. It returns how many were removed.
func (sm *SessionManager) CleanupOldSessions(finishedTTL, staleTTL time.Duration) int {
	now := sm.now()

	sm.mu.Lock()
	var expired []*GameSession
	for gameID, session := range sm.Sessions {
		session.mu.Lock()
		finished := session.game.IsFinished()
		stale := (finished && now.Sub(session.FinishedAt) > finishedTTL) ||
			(!finished && now.Sub(session.UpdatedAt) > staleTTL)
		session.mu.Unlock()

		if stale {
			delete(sm.Sessions, gameID)
			expired = append(expired, session)
		}
	}
	sm.mu.Unlock()

	for _, session := range expired {
		session.close("expired", "")
	}

	if len(expired) > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", len(expired))
	}
	return len(expired)
}

func normalizeProfile(p, fallback PlayerProfile) PlayerProfile {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = fallback.Name
	}
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	color := strings.TrimSpace(p.Color)
	if color == "" {
		color = fallback.Color
	}

	return PlayerProfile{Name: name, Color: color}
}
