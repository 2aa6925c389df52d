package platforms

import (
	"context"
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/models"
	"github.com/metrue/discussing/pkg/unescape"
)

const hnItemURL = "https://hn.algolia.com/api/v1/items/%s"

var hnItemRe = regexp.MustCompile(`item\?id=(\d+)`)

type hnItem struct {
	ID        int64    `json:"id"`
	Author    string   `json:"author"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"created_at"`
	Points    *int     `json:"points"`
	Children  []hnItem `json:"children"`
}

// FetchHackerNews fetches the comment tree of a Hacker News item through
// the Algolia items API. Never fails; on any error it logs the cause and
// returns an empty list.
func FetchHackerNews(ctx context.Context, rawURL string, opts *models.Options) []models.Comment {
	comments, err := fetchHackerNews(ctx, rawURL, opts.WithDefaults())
	if err != nil {
		log.Errorf("[hackernews] failed to fetch comments for %s: %v", rawURL, err)
		return []models.Comment{}
	}
	return comments
}

func fetchHackerNews(ctx context.Context, rawURL string, opts models.Options) ([]models.Comment, error) {
	m := hnItemRe.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("no item ID in URL %q", rawURL)
	}

	var item hnItem
	if err := getJSON(ctx, fmt.Sprintf(hnItemURL, m[1]), opts.UserAgent, &item); err != nil {
		return nil, err
	}

	return hnTree(item.Children), nil
}

// hnTree walks the children depth-first. Children without text are skipped
// entirely: their own children are not walked either. Timestamps arrive
// already ISO-8601 from this API and are taken as-is.
func hnTree(children []hnItem) []models.Comment {
	comments := make([]models.Comment, 0, len(children))
	for _, child := range children {
		if child.Text == "" {
			continue
		}

		author := child.Author
		if author == "" {
			author = models.AnonymousAuthor
		}

		comments = append(comments, models.Comment{
			ID:        fmt.Sprintf("hn-%d", child.ID),
			Author:    author,
			Content:   unescape.Decode(child.Text),
			Timestamp: child.CreatedAt,
			Platform:  TagHackerNews,
			Votes:     child.Points,
			Replies:   hnTree(child.Children),
		})
	}

	return comments
}
