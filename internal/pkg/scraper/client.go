package scraper

import (
	"Gramscope/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProfileAttributes 一次抓取得到的画像属性。
// FollowerCount 为 -1 表示抓取失败，调用方据此跳过
type ProfileAttributes struct {
	FollowerCount int
	ProfilePicURL string
	FullName      string
	Biography     string
}

// FailureAttributes 抓取失败时的哨兵返回值
func FailureAttributes() ProfileAttributes {
	return ProfileAttributes{FollowerCount: -1}
}

type Client struct {
	http   *resty.Client
	url    string
	target string
}

func NewClient(cfg *config.ScraperConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30
	}

	client := resty.New().
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Basic "+cfg.AuthToken)

	return &Client{
		http:   client,
		url:    cfg.URL,
		target: cfg.Target,
	}
}

// Fetch 调用抓取 API 获取单个账号的画像属性。
// 任何网络错误、非 2xx 状态码或响应解析失败都只返回哨兵值，不向上抛错
func (s *Client) Fetch(ctx context.Context, username string) ProfileAttributes {
	log.InfoContext(ctx, "Sending request to scraper API", "username", username)

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"target": s.target,
			"query":  username,
		}).
		Post(s.url)
	if err != nil {
		log.ErrorContext(ctx, "Scraper API request failed", "username", username, "err", err)
		return FailureAttributes()
	}

	log.InfoContext(ctx, "Scraper API response received", "username", username, "status", resp.StatusCode())

	if !resp.IsSuccess() {
		log.WarnContext(ctx, "Scraper API returned non-success status", "username", username, "status", resp.StatusCode())
		return FailureAttributes()
	}

	attrs := parseBody(resp.Body())
	if attrs.FollowerCount == -1 {
		log.WarnContext(ctx, "Could not extract complete profile data from response", "username", username)
	}
	return attrs
}
