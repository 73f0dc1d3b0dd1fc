package scraper

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// parseBody 解析抓取 API 的响应体。
// 预期结构为 results[0].content.data.user，任何一层缺失都返回哨兵值
func parseBody(body []byte) ProfileAttributes {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return FailureAttributes()
	}

	user, ok := userObject(payload)
	if !ok {
		return FailureAttributes()
	}

	attrs := FailureAttributes()
	attrs.FollowerCount = followerCount(user)

	// 头像优先取高清字段
	if pic, ok := stringField(user, "profile_pic_url_hd"); ok {
		attrs.ProfilePicURL = pic
	} else if pic, ok := stringField(user, "profile_pic_url"); ok {
		attrs.ProfilePicURL = pic
	}

	if name, ok := stringField(user, "full_name"); ok {
		attrs.FullName = name
	}
	if bio, ok := stringField(user, "biography"); ok {
		attrs.Biography = bio
	}

	return attrs
}

func userObject(payload map[string]any) (map[string]any, bool) {
	results, ok := payload["results"].([]any)
	if !ok || len(results) == 0 {
		return nil, false
	}
	first, ok := results[0].(map[string]any)
	if !ok {
		return nil, false
	}
	content, ok := first["content"].(map[string]any)
	if !ok {
		return nil, false
	}
	data, ok := content["data"].(map[string]any)
	if !ok {
		return nil, false
	}
	user, ok := data["user"].(map[string]any)
	if !ok {
		return nil, false
	}
	return user, true
}

// followerCount 优先取 edge_followed_by.count；取不到时按字典序扫描
// 名字里带 follow 的键，取第一个携带 count 子字段的对象
func followerCount(user map[string]any) int {
	if edge, ok := user["edge_followed_by"].(map[string]any); ok {
		if n, ok := countField(edge); ok {
			return n
		}
	}

	keys := make([]string, 0)
	for k := range user {
		if strings.Contains(strings.ToLower(k), "follow") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if obj, ok := user[k].(map[string]any); ok {
			if n, ok := countField(obj); ok {
				return n
			}
		}
	}
	return -1
}

func countField(obj map[string]any) (int, bool) {
	switch v := obj["count"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}
