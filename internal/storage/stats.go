package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PlayerStats is the persisted per-player record. The game engine never
// reads it; the platform updates it once per finished game.
type PlayerStats struct {
	Player     string
	Wins       int
	Losses     int
	TotalScore int64
}

// Record folds one finished game into the counters.
func (p *PlayerStats) Record(score int, won bool) {
	if won {
		p.Wins++
	} else {
		p.Losses++
	}
	p.TotalScore += int64(score)
}

// Games returns the number of recorded games.
func (p PlayerStats) Games() int {
	return p.Wins + p.Losses
}

// LoadStats returns the stats for player. A player with no row yet gets
// zeroed counters and no error.
func (s *Store) LoadStats(ctx context.Context, player string) (PlayerStats, error) {
	stats := PlayerStats{Player: player}
	err := s.db.QueryRowContext(ctx,
		`SELECT wins, losses, total_score FROM player_stats WHERE player = ?`,
		player,
	).Scan(&stats.Wins, &stats.Losses, &stats.TotalScore)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return PlayerStats{Player: player}, fmt.Errorf("storage: cannot load stats for %q: %w", player, err)
	}
	return stats, nil
}

// SaveStats replaces the stored counters for stats.Player.
func (s *Store) SaveStats(ctx context.Context, stats PlayerStats) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO player_stats (player, wins, losses, total_score, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		     wins = excluded.wins,
		     losses = excluded.losses,
		     total_score = excluded.total_score,
		     updated_at = excluded.updated_at`,
		stats.Player, stats.Wins, stats.Losses, stats.TotalScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save stats for %q: %w", stats.Player, err)
	}
	return nil
}

// RecordGame stores a finished game: the score row and the updated player
// counters are written in one transaction. Returns the updated counters.
func (s *Store) RecordGame(ctx context.Context, gameID, player string, score int, won bool) (PlayerStats, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO scores (game_id, player, score, won) VALUES (?, ?, ?, ?)",
		gameID, player, score, won,
	); err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO player_stats (player, wins, losses, total_score)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(player) DO UPDATE SET
		     wins = wins + excluded.wins,
		     losses = losses + excluded.losses,
		     total_score = total_score + excluded.total_score,
		     updated_at = CURRENT_TIMESTAMP`,
		player, boolInt(won), boolInt(!won), score,
	); err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot update stats for %q: %w", player, err)
	}

	stats := PlayerStats{Player: player}
	if err := tx.QueryRowContext(ctx,
		`SELECT wins, losses, total_score FROM player_stats WHERE player = ?`,
		player,
	).Scan(&stats.Wins, &stats.Losses, &stats.TotalScore); err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot read stats for %q: %w", player, err)
	}

	if err := tx.Commit(); err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return stats, nil
}

// TopPlayers returns players ordered by total score.
func (s *Store) TopPlayers(ctx context.Context, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT player, wins, losses, total_score
		 FROM player_stats
		 ORDER BY total_score DESC, player ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerStats
	for rows.Next() {
		var p PlayerStats
		if err := rows.Scan(&p.Player, &p.Wins, &p.Losses, &p.TotalScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return players, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
