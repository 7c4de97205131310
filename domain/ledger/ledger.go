package ledger

import (
	"fmt"
	"strings"
	"time"

	"pokerledger/domain/entities"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// RoundInput carries the fields of a round to be recorded
type RoundInput struct {
	Winners     []string
	Dealer      string
	Combination entities.Combination
	Comment     string
}

// SessionLedger owns the mutable record of one game. It performs no I/O and is not
// safe for concurrent use; callers serialize access per game.
type SessionLedger struct {
	game  *entities.Game
	clock quartz.Clock
	timer *SessionTimer
	newID func() uuid.UUID
}

// NewGame validates the create-game input and returns a ledger in the created state
func NewGame(name string, players []string, settings entities.GameSettings, clock quartz.Clock) (*SessionLedger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("game name: %w", ErrBlankName)
	}

	participants := uniqueNames(players)
	if len(participants) < 2 {
		return nil, fmt.Errorf("got %d unique players: %w", len(participants), ErrNotEnoughPlayers)
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	buyIns := make(map[string]int, len(participants))
	for _, p := range participants {
		buyIns[p] = 1
	}

	now := clock.Now()
	game := &entities.Game{
		Name:      name,
		Players:   participants,
		PlayerIDs: make(map[string]int64, len(participants)),
		Settings:  settings,
		BuyIns:    buyIns,
		Rounds:    []*entities.Round{},
		Status:    entities.GameStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &SessionLedger{game: game, clock: clock, newID: uuid.New}, nil
}

// Restore wraps a persisted game without replaying validation
func Restore(game *entities.Game, clock quartz.Clock) *SessionLedger {
	if game.BuyIns == nil {
		game.BuyIns = make(map[string]int)
	}
	if game.PlayerIDs == nil {
		game.PlayerIDs = make(map[string]int64)
	}
	return &SessionLedger{game: game, clock: clock, newID: uuid.New}
}

// Game returns a copy of the current game state
func (l *SessionLedger) Game() *entities.Game {
	return l.game.Clone()
}

// AttachTimer links the session timer whose value is frozen on Finish
func (l *SessionLedger) AttachTimer(t *SessionTimer) {
	l.timer = t
}

// Start moves a created game to active and stamps its start time
func (l *SessionLedger) Start() error {
	if l.game.Status != entities.GameStatusCreated {
		return fmt.Errorf("cannot start game in status %s: %w", l.game.Status, ErrInvalidTransition)
	}
	now := l.clock.Now()
	l.game.Status = entities.GameStatusActive
	l.game.StartedAt = &now
	l.game.UpdatedAt = now
	return nil
}

// AddRound appends a round. Winners are trimmed and de-duplicated.
func (l *SessionLedger) AddRound(in RoundInput) (*entities.Round, error) {
	if !l.game.IsActive() {
		return nil, ErrGameNotActive
	}

	winners := uniqueNames(in.Winners)
	if len(winners) == 0 {
		return nil, ErrNoWinners
	}
	dealer := strings.TrimSpace(in.Dealer)
	if dealer == "" {
		return nil, ErrNoDealer
	}
	if in.Combination == "" {
		return nil, ErrNoCombination
	}
	if !in.Combination.IsValid() {
		return nil, fmt.Errorf("unknown combination %q: %w", in.Combination, ErrNoCombination)
	}

	for _, w := range winners {
		if !l.game.HasPlayer(w) {
			return nil, fmt.Errorf("winner %q: %w", w, ErrNotParticipant)
		}
	}
	if !l.game.HasPlayer(dealer) {
		return nil, fmt.Errorf("dealer %q: %w", dealer, ErrNotParticipant)
	}

	now := l.clock.Now()
	if n := len(l.game.Rounds); n > 0 && now.Before(l.game.Rounds[n-1].Timestamp) {
		now = l.game.Rounds[n-1].Timestamp
	}

	round := &entities.Round{
		ID:          l.newID(),
		GameID:      l.game.ID,
		Number:      len(l.game.Rounds) + 1,
		Winners:     winners,
		Dealer:      dealer,
		Combination: in.Combination,
		Comment:     strings.TrimSpace(in.Comment),
		Timestamp:   now,
	}
	l.game.Rounds = append(l.game.Rounds, round)
	l.game.UpdatedAt = now

	rc := *round
	rc.Winners = append([]string(nil), winners...)
	return &rc, nil
}

// AddBuyIns increments the buy-in count of every selected player by one.
// amount overrides the advisory chip amount of the returned rows; it does not
// affect settlement. An empty selection is a no-op.
func (l *SessionLedger) AddBuyIns(players []string, amount *int64) ([]*entities.BuyIn, error) {
	selected := uniqueNames(players)
	if len(selected) == 0 {
		return nil, nil
	}
	if !l.game.IsActive() {
		return nil, ErrGameNotActive
	}
	for _, p := range selected {
		if !l.game.HasPlayer(p) {
			return nil, fmt.Errorf("buy-in for %q: %w", p, ErrNotParticipant)
		}
	}

	chips := l.game.Settings.StartingStack
	if amount != nil {
		if *amount <= 0 {
			return nil, fmt.Errorf("buy-in amount %d: %w", *amount, ErrInvalidSetting)
		}
		chips = *amount
	}

	now := l.clock.Now()
	rows := make([]*entities.BuyIn, 0, len(selected))
	for _, p := range selected {
		l.game.BuyIns[p]++
		rows = append(rows, l.buyInRow(p, l.game.BuyIns[p], chips, now))
	}
	l.game.UpdatedAt = now
	return rows, nil
}

// UpdateSettings overwrites the provided fields after validating all of them
func (l *SessionLedger) UpdateSettings(patch entities.SettingsPatch) error {
	if l.game.IsFinished() {
		return ErrGameFinished
	}

	name := l.game.Name
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("game name: %w", ErrBlankName)
		}
	}

	settings := l.game.Settings
	if patch.SmallBlind != nil {
		settings.SmallBlind = *patch.SmallBlind
	}
	if patch.BigBlind != nil {
		settings.BigBlind = *patch.BigBlind
	}
	if patch.StartingStack != nil {
		settings.StartingStack = *patch.StartingStack
	}
	if patch.ChipToRuble != nil {
		settings.ChipToRuble = *patch.ChipToRuble
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	l.game.Name = name
	l.game.Settings = settings
	l.game.UpdatedAt = l.clock.Now()
	return nil
}

// AddPlayer appends a participant and seeds one buy-in. The returned row is the
// initial buy-in.
func (l *SessionLedger) AddPlayer(name string) (*entities.BuyIn, error) {
	if l.game.IsFinished() {
		return nil, ErrGameFinished
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("player name: %w", ErrBlankName)
	}
	if l.game.HasPlayer(name) {
		return nil, fmt.Errorf("player %q: %w", name, ErrDuplicatePlayer)
	}

	now := l.clock.Now()
	l.game.Players = append(l.game.Players, name)
	l.game.BuyIns[name] = 1
	l.game.UpdatedAt = now
	return l.buyInRow(name, 1, l.game.Settings.StartingStack, now), nil
}

// Finish validates the final chip counts, freezes the game and returns its settlement
func (l *SessionLedger) Finish(finalChips map[string]int64) ([]entities.SettlementResult, error) {
	if !l.game.IsActive() {
		return nil, ErrGameNotActive
	}
	for _, p := range l.game.Players {
		chips, ok := finalChips[p]
		if !ok {
			return nil, fmt.Errorf("player %q: %w", p, ErrMissingFinalChips)
		}
		if chips < 0 {
			return nil, fmt.Errorf("player %q has %d: %w", p, chips, ErrNegativeChips)
		}
	}
	for name := range finalChips {
		if !l.game.HasPlayer(name) {
			return nil, fmt.Errorf("final chips for %q: %w", name, ErrNotParticipant)
		}
	}

	results := l.ComputeSettlement(finalChips)

	now := l.clock.Now()
	if l.timer != nil {
		l.timer.Pause()
		l.game.DurationSeconds = int64(l.timer.Elapsed() / time.Second)
	}
	l.game.Status = entities.GameStatusFinished
	l.game.EndedAt = &now
	l.game.UpdatedAt = now
	return results, nil
}

// ComputeSettlement returns one row per participant. Missing entries count as zero
// chips so the result can be previewed before every count is known.
func (l *SessionLedger) ComputeSettlement(finalChips map[string]int64) []entities.SettlementResult {
	return ComputeSettlement(l.game, finalChips)
}

// WinnerStats returns the winner table of the game
func (l *SessionLedger) WinnerStats() []entities.WinnerStat {
	return WinnerStats(l.game.Rounds)
}

// CombinationStats returns the combination breakdown of the game
func (l *SessionLedger) CombinationStats() []entities.CombinationStat {
	return CombinationStats(l.game.Rounds)
}

// BestDealerStats returns the luckiest dealer(s) of every player with wins
func (l *SessionLedger) BestDealerStats() []entities.DealerStat {
	return BestDealerStats(l.game.Players, l.game.Rounds)
}

// PlayerGameStats summarises one participant
func (l *SessionLedger) PlayerGameStats(name string) (entities.PlayerGameStats, error) {
	if !l.game.HasPlayer(name) {
		return entities.PlayerGameStats{}, fmt.Errorf("player %q: %w", name, ErrNotParticipant)
	}
	return PlayerGameStats(l.game, name), nil
}

// TotalChipsInPlay returns the chips bought into the game so far
func (l *SessionLedger) TotalChipsInPlay() int64 {
	return l.game.TotalChipsInPlay()
}

// Dashboard returns the overview of the game with the five most recent rounds
func (l *SessionLedger) Dashboard() entities.Dashboard {
	const recent = 5

	rounds := l.game.Rounds
	start := len(rounds) - recent
	if start < 0 {
		start = 0
	}
	latest := make([]*entities.Round, 0, len(rounds)-start)
	for i := len(rounds) - 1; i >= start; i-- {
		latest = append(latest, rounds[i])
	}

	elapsed := l.game.Duration()
	if l.timer != nil && !l.game.IsFinished() {
		elapsed = l.timer.Elapsed()
	}

	return entities.Dashboard{
		GameName:         l.game.Name,
		Status:           l.game.Status,
		PlayerCount:      len(l.game.Players),
		RoundCount:       len(rounds),
		TotalChipsInPlay: l.game.TotalChipsInPlay(),
		SmallBlind:       l.game.Settings.SmallBlind,
		BigBlind:         l.game.Settings.BigBlind,
		RecentRounds:     latest,
		Elapsed:          elapsed,
	}
}

func (l *SessionLedger) buyInRow(player string, number int, chips int64, at time.Time) *entities.BuyIn {
	return &entities.BuyIn{
		GameID:      l.game.ID,
		PlayerID:    l.game.PlayerIDs[player],
		PlayerName:  player,
		BuyInNumber: number,
		ChipsAmount: chips,
		RubleAmount: float64(chips) * l.game.Settings.ChipToRuble,
		CreatedAt:   at,
	}
}

func validateSettings(s entities.GameSettings) error {
	switch {
	case s.StartingStack <= 0:
		return fmt.Errorf("starting stack %d: %w", s.StartingStack, ErrInvalidSetting)
	case s.SmallBlind <= 0:
		return fmt.Errorf("small blind %d: %w", s.SmallBlind, ErrInvalidSetting)
	case s.BigBlind <= 0:
		return fmt.Errorf("big blind %d: %w", s.BigBlind, ErrInvalidSetting)
	case s.ChipToRuble <= 0:
		return fmt.Errorf("chip to ruble rate %v: %w", s.ChipToRuble, ErrInvalidSetting)
	}
	return nil
}

// uniqueNames trims names, drops blanks and keeps the first occurrence of each
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
