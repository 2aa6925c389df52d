// Package platforms contains the per-platform comment fetchers. Each
// fetcher extracts the platform-native discussion identifier from a
// user-supplied URL, calls the platform's public read API and parses the
// response into the canonical comment tree.
//
// Fetchers never fail: on any error (bad URL shape, network failure,
// non-success status, malformed body) the cause is logged and an empty
// list is returned, so one platform's outage cannot break an embed.
package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Platform tags. A comment's ID is always "{tag}-{platform-native-id}" so
// IDs cannot collide across platforms.
const (
	TagV2EX       = "v2ex"
	TagReddit     = "reddit"
	TagHackerNews = "hn"
)

// Tags lists the supported platform tags.
var Tags = []string{TagV2EX, TagReddit, TagHackerNews}

const requestTimeout = 10 * time.Second

const isoLayout = "2006-01-02T15:04:05.000Z"

// isoFromUnix converts epoch seconds to the ISO-8601 form used by the
// canonical comment model.
func isoFromUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(isoLayout)
}

// getJSON issues a GET request with the given User-Agent and decodes the
// JSON response body into v.
func getJSON(ctx context.Context, url, userAgent string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request to %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", url, err)
	}

	return nil
}
