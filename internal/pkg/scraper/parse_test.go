package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyFullProfile(t *testing.T) {
	body := []byte(`{
		"results": [{
			"content": {
				"data": {
					"user": {
						"edge_followed_by": {"count": 12345},
						"profile_pic_url_hd": "https://cdn/hd.jpg",
						"profile_pic_url": "https://cdn/sd.jpg",
						"full_name": "NBA",
						"biography": "Basketball."
					}
				}
			}
		}]
	}`)

	attrs := parseBody(body)

	assert.Equal(t, 12345, attrs.FollowerCount)
	assert.Equal(t, "https://cdn/hd.jpg", attrs.ProfilePicURL)
	assert.Equal(t, "NBA", attrs.FullName)
	assert.Equal(t, "Basketball.", attrs.Biography)
}

func TestParseBodyPicFallsBackToStandardDefinition(t *testing.T) {
	body := []byte(`{
		"results": [{
			"content": {
				"data": {
					"user": {
						"edge_followed_by": {"count": 1},
						"profile_pic_url": "https://cdn/sd.jpg"
					}
				}
			}
		}]
	}`)

	attrs := parseBody(body)

	assert.Equal(t, "https://cdn/sd.jpg", attrs.ProfilePicURL)
	assert.Empty(t, attrs.FullName)
	assert.Empty(t, attrs.Biography)
}

func TestParseBodyMissingUserPath(t *testing.T) {
	cases := map[string]string{
		"no results":    `{}`,
		"empty results": `{"results": []}`,
		"no content":    `{"results": [{}]}`,
		"no data":       `{"results": [{"content": {}}]}`,
		"no user":       `{"results": [{"content": {"data": {}}}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, FailureAttributes(), parseBody([]byte(body)))
		})
	}
}

func TestParseBodyMalformedJSON(t *testing.T) {
	assert.Equal(t, FailureAttributes(), parseBody([]byte(`<html>not json</html>`)))
}

// 主路径缺失时按字典序扫描带 follow 的键,取第一个有 count 的对象
func TestFollowerCountFallbackScan(t *testing.T) {
	body := []byte(`{
		"results": [{
			"content": {
				"data": {
					"user": {
						"follower_info": {"count": 777},
						"edge_follow": {"count": 42},
						"full_name": "x"
					}
				}
			}
		}]
	}`)

	attrs := parseBody(body)

	// edge_follow 在字典序上先于 follower_info
	assert.Equal(t, 42, attrs.FollowerCount)
	assert.Equal(t, "x", attrs.FullName)
}

func TestFollowerCountFallbackIgnoresNonObjectKeys(t *testing.T) {
	user := map[string]any{
		"followed_by_viewer": false,
		"follower_info":      map[string]any{"count": float64(9)},
	}

	assert.Equal(t, 9, followerCount(user))
}

func TestFollowerCountSentinelWhenNothingMatches(t *testing.T) {
	user := map[string]any{
		"full_name": "x",
	}

	assert.Equal(t, -1, followerCount(user))
}

func TestParseBodyKeepsFieldsWhenFollowerCountMissing(t *testing.T) {
	body := []byte(`{
		"results": [{
			"content": {
				"data": {
					"user": {
						"full_name": "NBA",
						"biography": "Basketball."
					}
				}
			}
		}]
	}`)

	attrs := parseBody(body)

	require.Equal(t, -1, attrs.FollowerCount)
	assert.Equal(t, "NBA", attrs.FullName)
}
