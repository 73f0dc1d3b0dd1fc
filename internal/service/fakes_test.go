package service

import (
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/scraper"
	"Gramscope/internal/repository"
	"context"
	"time"
)

type fakeAccountRepo struct {
	accounts []*model.Account
	nextID   uint64

	createErr error
	updateErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1}
}

func (s *fakeAccountRepo) ListAll(_ context.Context) ([]*model.Account, error) {
	result := make([]*model.Account, len(s.accounts))
	for i := range s.accounts {
		result[len(s.accounts)-1-i] = s.accounts[i]
	}
	return result, nil
}

func (s *fakeAccountRepo) ListActive(_ context.Context) ([]*model.Account, error) {
	result := make([]*model.Account, 0)
	for _, account := range s.accounts {
		if account.Status == "active" {
			result = append(result, account)
		}
	}
	return result, nil
}

func (s *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, account := range s.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, nil
}

func (s *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if s.createErr != nil {
		return s.createErr
	}
	account.ID = s.nextID
	account.CreatedAt = time.Now()
	s.nextID++
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *fakeAccountRepo) UpdateStatus(_ context.Context, username string, status string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for _, account := range s.accounts {
		if account.Username == username {
			account.Status = status
		}
	}
	return nil
}

type fakeSnapshotRepo struct {
	created     []*model.ProfileSnapshot
	latestRows  []*repository.LatestProfileRow
	rankingRows []*repository.RankingSourceRow

	createErr error
}

func (s *fakeSnapshotRepo) Create(_ context.Context, snapshot *model.ProfileSnapshot) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, snapshot)
	return nil
}

func (s *fakeSnapshotRepo) ListLatestByAccount(_ context.Context) ([]*repository.LatestProfileRow, error) {
	return s.latestRows, nil
}

func (s *fakeSnapshotRepo) ListLatestForRanking(_ context.Context) ([]*repository.RankingSourceRow, error) {
	return s.rankingRows, nil
}

type fakeRankingRepo struct {
	batches []*model.AccountRanking
}

func (s *fakeRankingRepo) CreateBatch(_ context.Context, entries []*model.AccountRanking) error {
	s.batches = append(s.batches, entries...)
	return nil
}

func (s *fakeRankingRepo) LatestSnapshotDate(_ context.Context) (*time.Time, error) {
	var latest *time.Time
	for _, entry := range s.batches {
		if latest == nil || entry.SnapshotDate.After(*latest) {
			date := entry.SnapshotDate
			latest = &date
		}
	}
	return latest, nil
}

func (s *fakeRankingRepo) ListByDate(_ context.Context, date time.Time) ([]*model.AccountRanking, error) {
	result := make([]*model.AccountRanking, 0)
	for _, entry := range s.batches {
		if entry.SnapshotDate.Equal(date) {
			result = append(result, entry)
		}
	}
	return result, nil
}

type fakeFetcher struct {
	results map[string]scraper.ProfileAttributes
	calls   []string
}

func (s *fakeFetcher) Fetch(_ context.Context, username string) scraper.ProfileAttributes {
	s.calls = append(s.calls, username)
	if attrs, ok := s.results[username]; ok {
		return attrs
	}
	return scraper.FailureAttributes()
}
