package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
)

// LeaderboardSize is how many donors the leaderboard shows.
const LeaderboardSize = 10

type LeaderboardService interface {
	// Top ranks users by karma. Equal karma shares a rank. The signed-in
	// user's row is marked Current; if they are outside the top, their row
	// is appended with its real rank.
	Top(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	store SessionStore
}

func NewLeaderboardService(db *sql.DB, repos repomanager.RepositoryManager, store SessionStore) LeaderboardService {
	return &leaderboardService{db: db, repos: repos, store: store}
}

func (s *leaderboardService) Top(ctx context.Context) ([]models.LeaderboardEntry, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleAny, snap); err != nil {
		return nil, err
	}

	// All rows are needed to rank the current user when outside the top.
	users, err := s.repos.Accounts(s.db).TopByKarma(ctx, -1)
	if err != nil {
		return nil, err
	}

	entries := rank(users, snap.User.ID)
	if len(entries) <= LeaderboardSize {
		return entries, nil
	}

	out := entries[:LeaderboardSize:LeaderboardSize]
	for _, e := range entries[LeaderboardSize:] {
		if e.Current {
			out = append(out, e)
			break
		}
	}
	return out, nil
}

// rank assigns competition ranks (1, 2, 2, 4) to users sorted by karma.
func rank(users []*models.User, currentID string) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		r := i + 1
		if i > 0 && u.KarmaPoints == users[i-1].KarmaPoints {
			r = out[i-1].Rank
		}
		out = append(out, models.LeaderboardEntry{
			Rank:        r,
			UserID:      u.ID,
			Name:        u.Name,
			KarmaPoints: u.KarmaPoints,
			Current:     u.ID == currentID,
		})
	}
	return out
}
