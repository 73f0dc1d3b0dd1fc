package service

import (
	"Gramscope/internal/api/dto"
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/consts"
	"Gramscope/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type AccountService interface {
	ListAccounts(ctx context.Context) ([]*dto.AccountDTO, error)
	AddAccounts(ctx context.Context, accounts []*dto.AccountUpsertDTO) (*dto.AddAccountsResultDTO, error)
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &accountServiceImpl{accountRepo: accountRepo}
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]*dto.AccountDTO, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AccountDTO, 0, len(accounts))
	if err = copier.Copy(&result, &accounts); err != nil {
		return nil, err
	}
	return result, nil
}

// AddAccounts 按用户名 upsert：已存在只改状态，不存在则新增。
// 单条失败只记入 skipped，不影响其余条目
func (s *accountServiceImpl) AddAccounts(ctx context.Context, accounts []*dto.AccountUpsertDTO) (*dto.AddAccountsResultDTO, error) {
	if len(accounts) == 0 {
		return nil, ErrParamInvalid
	}

	added := make([]string, 0)
	skipped := make([]*dto.SkippedAccountDTO, 0)

	for _, item := range accounts {
		username := strings.TrimSpace(item.Username)
		if username == "" {
			skipped = append(skipped, &dto.SkippedAccountDTO{
				Username: item.Username,
				Reason:   ErrParamInvalid.Error(),
			})
			continue
		}

		status := item.Status
		if status == "" {
			status = consts.AccountStatusActive
		}

		existing, err := s.accountRepo.GetByUsername(ctx, username)
		if err != nil {
			skipped = append(skipped, &dto.SkippedAccountDTO{Username: username, Reason: err.Error()})
			continue
		}

		if existing != nil {
			if err = s.accountRepo.UpdateStatus(ctx, username, status); err != nil {
				skipped = append(skipped, &dto.SkippedAccountDTO{Username: username, Reason: err.Error()})
				continue
			}
			skipped = append(skipped, &dto.SkippedAccountDTO{
				Username: username,
				Reason:   "账号已存在，状态已更新",
			})
			continue
		}

		if err = s.accountRepo.Create(ctx, &model.Account{Username: username, Status: status}); err != nil {
			skipped = append(skipped, &dto.SkippedAccountDTO{Username: username, Reason: err.Error()})
			continue
		}
		added = append(added, username)
	}

	log.InfoContext(ctx, "Accounts upserted", "added", len(added), "skipped", len(skipped))

	return &dto.AddAccountsResultDTO{
		Message: fmt.Sprintf("新增 %d 个账号，跳过 %d 个", len(added), len(skipped)),
		Added:   added,
		Skipped: skipped,
	}, nil
}
