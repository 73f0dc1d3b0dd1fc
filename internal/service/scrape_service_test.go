package service

import (
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/scraper"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeAllSkipsFailedAccounts(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "brokenuser", Status: "active"}))
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "nba", Status: "active"}))

	snapshotRepo := &fakeSnapshotRepo{}
	fetcher := &fakeFetcher{results: map[string]scraper.ProfileAttributes{
		"brokenuser": scraper.FailureAttributes(),
		"nba":        {FollowerCount: 500, FullName: "NBA"},
	}}

	svc := NewScrapeService(accountRepo, snapshotRepo, fetcher)

	result, err := svc.ScrapeAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)

	// brokenuser 不落快照，nba 落一条
	require.Len(t, snapshotRepo.created, 1)
	assert.Equal(t, 500, snapshotRepo.created[0].FollowerCount)
	assert.False(t, snapshotRepo.created[0].CheckedAt.IsZero())
}

func TestScrapeAllNoActiveAccounts(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "nba", Status: "paused"}))

	snapshotRepo := &fakeSnapshotRepo{}
	svc := NewScrapeService(accountRepo, snapshotRepo, &fakeFetcher{})

	result, err := svc.ScrapeAll(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Empty(t, snapshotRepo.created)
}

func TestScrapeAllOnlyFetchesActiveAccounts(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "nba", Status: "active"}))
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "nike", Status: "paused"}))

	fetcher := &fakeFetcher{results: map[string]scraper.ProfileAttributes{
		"nba": {FollowerCount: 100},
	}}
	svc := NewScrapeService(accountRepo, &fakeSnapshotRepo{}, fetcher)

	_, err := svc.ScrapeAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"nba"}, fetcher.calls)
}

func TestScrapeAllAbortsOnStorageFault(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	require.NoError(t, accountRepo.Create(context.Background(), &model.Account{Username: "nba", Status: "active"}))

	snapshotRepo := &fakeSnapshotRepo{createErr: assert.AnError}
	fetcher := &fakeFetcher{results: map[string]scraper.ProfileAttributes{
		"nba": {FollowerCount: 100},
	}}
	svc := NewScrapeService(accountRepo, snapshotRepo, fetcher)

	_, err := svc.ScrapeAll(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
