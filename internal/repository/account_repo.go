package repository

import (
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepo interface {
	ListAll(ctx context.Context) ([]*model.Account, error)
	ListActive(ctx context.Context) ([]*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) error
	UpdateStatus(ctx context.Context, username string, status string) error
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (s *accountRepoImpl) ListAll(ctx context.Context) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) ListActive(ctx context.Context) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0)
	result := s.db.WithContext(ctx).
		Where("status = ?", consts.AccountStatusActive).
		Order("id ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *accountRepoImpl) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (s *accountRepoImpl) Create(ctx context.Context, account *model.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *accountRepoImpl) UpdateStatus(ctx context.Context, username string, status string) error {
	return s.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("username = ?", username).
		Update("status", status).Error
}
