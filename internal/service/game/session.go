package game

import (
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-hotseat/internal/domain"
)

// GameSession wraps one engine Game with the presentation data around it.
// Every read or write of the game goes through mu, so a move, its win check and
// the notifications it triggers are seen as one step.
type GameSession struct {
	GameID     string
	Profiles   [2]PlayerProfile
	Device     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt time.Time
	Closed     bool

	game      *domain.Game
	rematched bool
	listeners map[int]Listener
	nextID    int
	mu        sync.Mutex
}

func newGameSession(gameID string, game *domain.Game, profiles [2]PlayerProfile, device string, now time.Time) *GameSession {
	return &GameSession{
		GameID:    gameID,
		Profiles:  profiles,
		Device:    device,
		CreatedAt: now,
		UpdatedAt: now,
		game:      game,
		listeners: make(map[int]Listener),
	}
}

// DropPiece plays the current player's piece into column.
func (gs *GameSession) DropPiece(column int, now time.Time) (domain.Move, GameState, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Closed {
		return domain.Move{}, GameState{}, ErrGameNotFound
	}

	move, err := gs.game.DropPiece(column)
	if err != nil {
		return domain.Move{}, GameState{}, err
	}

	gs.UpdatedAt = now
	if gs.game.IsFinished() {
		gs.FinishedAt = now
	}

	state := gs.stateLocked()
	gs.notifyLocked(Event{Type: EventPieceDropped, GameID: gs.GameID, Move: &move, State: state})

	switch move.Status {
	case domain.StatusWon:
		log.Printf("[GAME] Game %s won by %s after %d moves", gs.GameID, gs.nameLocked(move.Winner), gs.game.MoveCount())
		gs.notifyLocked(Event{Type: EventGameOver, GameID: gs.GameID, Move: &move, State: state, Reason: "connect_four"})
	case domain.StatusDraw:
		log.Printf("[GAME] Game %s ended in a draw", gs.GameID)
		gs.notifyLocked(Event{Type: EventGameOver, GameID: gs.GameID, Move: &move, State: state, Reason: "draw"})
	}

	return move, state, nil
}

func (gs *GameSession) State() GameState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.stateLocked()
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.game.IsFinished()
}

// Subscribe registers a listener and returns the function that removes it.
func (gs *GameSession) Subscribe(l Listener) func() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	id := gs.nextID
	gs.nextID++
	gs.listeners[id] = l

	return func() {
		gs.mu.Lock()
		defer gs.mu.Unlock()
		delete(gs.listeners, id)
	}
}

func (gs *GameSession) ListenerCount() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return len(gs.listeners)
}

// close marks the session as gone and tells every listener, further moves are rejected.
func (gs *GameSession) close(reason, newGameID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Closed {
		return
	}
	gs.Closed = true

	if newGameID != "" {
		gs.notifyLocked(Event{Type: EventRematch, GameID: gs.GameID, NewGameID: newGameID, State: gs.stateLocked(), Reason: reason})
	}
	gs.notifyLocked(Event{Type: EventGameClosed, GameID: gs.GameID, State: gs.stateLocked(), Reason: reason})
	gs.listeners = make(map[int]Listener)
}

func (gs *GameSession) stateLocked() GameState {
	g := gs.game
	board := g.Board()
	players := g.Players()

	state := GameState{
		GameID:        gs.GameID,
		Rows:          board.Height,
		Columns:       board.Width,
		Board:         board.Ints(),
		CurrentPlayer: g.CurrentPlayer(),
		Status:        g.Status(),
		Winner:        g.Winner(),
		WinningLine:   g.WinningLine(),
		MoveCount:     g.MoveCount(),
		ValidColumns:  g.ValidColumns(),
		CreatedAt:     gs.CreatedAt,
		Players: []PlayerView{
			{ID: players[0], PlayerProfile: gs.Profiles[0]},
			{ID: players[1], PlayerProfile: gs.Profiles[1]},
		},
	}
	if !gs.FinishedAt.IsZero() {
		finished := gs.FinishedAt
		state.FinishedAt = &finished
	}
	return state
}

func (gs *GameSession) nameLocked(id domain.PlayerID) string {
	players := gs.game.Players()
	if id == players[0] {
		return gs.Profiles[0].Name
	}
	return gs.Profiles[1].Name
}

func (gs *GameSession) notifyLocked(e Event) {
	for _, l := range gs.listeners {
		l(e)
	}
}
