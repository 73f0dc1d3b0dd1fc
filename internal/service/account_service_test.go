package service

import (
	"Gramscope/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccountsInsertsNewAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	result, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{
		{Username: "nba"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"nba"}, result.Added)
	assert.Empty(t, result.Skipped)
	require.Len(t, repo.accounts, 1)
	assert.Equal(t, "active", repo.accounts[0].Status)
}

func TestAddAccountsTwiceIsIdempotent(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{{Username: "nba"}})
	require.NoError(t, err)

	result, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{{Username: "nba"}})
	require.NoError(t, err)

	// 第二次调用报告为更新而不是新增，且仍然只有一行
	assert.Empty(t, result.Added)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "nba", result.Skipped[0].Username)
	assert.Len(t, repo.accounts, 1)
}

func TestAddAccountsUpdatesStatusForExisting(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{{Username: "nba"}})
	require.NoError(t, err)

	_, err = svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{{Username: "nba", Status: "paused"}})
	require.NoError(t, err)

	assert.Equal(t, "paused", repo.accounts[0].Status)
}

func TestAddAccountsItemFailureDoesNotAbortBatch(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	result, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{
		{Username: "  "},
		{Username: "nike"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"nike"}, result.Added)
	require.Len(t, result.Skipped, 1)
	assert.Len(t, repo.accounts, 1)
}

func TestAddAccountsEmptyListRejected(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.AddAccounts(context.Background(), nil)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestListAccountsNewestFirst(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.AddAccounts(context.Background(), []*dto.AccountUpsertDTO{
		{Username: "nba"},
		{Username: "nike"},
	})
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "nike", accounts[0].Username)
	assert.Equal(t, "nba", accounts[1].Username)
}
