package service

import (
	"Gramscope/internal/api/dto"
	"Gramscope/internal/pkg/consts"
	"Gramscope/internal/pkg/redis"
	"Gramscope/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const profilesCacheTTL = time.Minute

type ProfileService interface {
	ListLatestProfiles(ctx context.Context) ([]*dto.ProfileDTO, error)
}

type profileServiceImpl struct {
	snapshotRepo repository.ProfileSnapshotRepo
}

func NewProfileService(snapshotRepo repository.ProfileSnapshotRepo) ProfileService {
	return &profileServiceImpl{snapshotRepo: snapshotRepo}
}

// ListLatestProfiles 每个活跃账号的最新快照，按粉丝数倒序，带短 TTL 缓存
func (s *profileServiceImpl) ListLatestProfiles(ctx context.Context) ([]*dto.ProfileDTO, error) {
	if redis.Enabled() {
		cached, err := redis.GetValue(ctx, consts.ProfilesCacheKey)
		if err != nil {
			log.WarnContext(ctx, "Profiles cache read failed", "err", err)
		} else if cached != "" {
			profiles := make([]*dto.ProfileDTO, 0)
			if err = json.Unmarshal([]byte(cached), &profiles); err == nil {
				return profiles, nil
			}
		}
	}

	rows, err := s.snapshotRepo.ListLatestByAccount(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*dto.ProfileDTO, 0, len(rows))
	if err = copier.Copy(&profiles, &rows); err != nil {
		return nil, err
	}

	if redis.Enabled() {
		if raw, err := json.Marshal(profiles); err == nil {
			if err = redis.SetWithExpiration(ctx, consts.ProfilesCacheKey, raw, profilesCacheTTL); err != nil {
				log.WarnContext(ctx, "Profiles cache write failed", "err", err)
			}
		}
	}

	return profiles, nil
}
