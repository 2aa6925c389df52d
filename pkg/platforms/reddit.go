package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/models"
)

// Comment records in a Reddit listing carry kind "t1"; the submission
// itself is a "t3" record and is discarded.
const redditCommentKind = "t1"

type redditListing struct {
	Data struct {
		Children []redditThing `json:"children"`
	} `json:"data"`
}

type redditThing struct {
	Kind string        `json:"kind"`
	Data redditComment `json:"data"`
}

type redditComment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`

	// Reddit sends the empty string instead of a listing object when a
	// comment has no replies, so the field is decoded lazily.
	Replies json.RawMessage `json:"replies"`
}

// FetchReddit fetches the comment tree of a Reddit submission. The
// submission URL itself serves as the API identifier: one trailing slash
// is stripped and ".json" appended. Never fails; on any error it logs the
// cause and returns an empty list.
func FetchReddit(ctx context.Context, rawURL string, opts *models.Options) []models.Comment {
	comments, err := fetchReddit(ctx, rawURL, opts.WithDefaults())
	if err != nil {
		log.Errorf("[reddit] failed to fetch comments for %s: %v", rawURL, err)
		return []models.Comment{}
	}
	return comments
}

func fetchReddit(ctx context.Context, rawURL string, opts models.Options) ([]models.Comment, error) {
	apiURL := strings.TrimSuffix(rawURL, "/") + ".json"

	// The response is a two-element array: the submission listing,
	// then the comment listing.
	var listings []redditListing
	if err := getJSON(ctx, apiURL, opts.UserAgent, &listings); err != nil {
		return nil, err
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("unexpected response shape from %s: want 2 listings, got %d", apiURL, len(listings))
	}

	return redditTree(listings[1].Data.Children), nil
}

// redditTree maps comment-kind records to Comments, recursing into nested
// reply listings. Author is kept verbatim, including the literal
// "[deleted]" marker.
func redditTree(children []redditThing) []models.Comment {
	comments := make([]models.Comment, 0, len(children))
	for _, child := range children {
		if child.Kind != redditCommentKind {
			continue
		}

		data := child.Data
		score := data.Score
		comment := models.Comment{
			ID:        "reddit-" + data.ID,
			Author:    data.Author,
			Content:   data.Body,
			Timestamp: isoFromUnix(int64(data.CreatedUTC)),
			Platform:  TagReddit,
			Votes:     &score,
			Replies:   []models.Comment{},
		}

		if len(data.Replies) > 0 && data.Replies[0] == '{' {
			var nested redditListing
			if err := json.Unmarshal(data.Replies, &nested); err != nil {
				log.Debugf("[reddit] skipping malformed replies listing under comment %s: %v", data.ID, err)
			} else {
				comment.Replies = redditTree(nested.Data.Children)
			}
		}

		comments = append(comments, comment)
	}

	return comments
}
