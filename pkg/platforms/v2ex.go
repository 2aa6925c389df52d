package platforms

import (
	"context"
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/models"
)

const v2exRepliesURL = "https://www.v2ex.com/api/replies/show.json?topic_id=%s"

var v2exTopicRe = regexp.MustCompile(`/t/(\d+)`)

type v2exReply struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Created int64  `json:"created"`
	Member  struct {
		Username     string `json:"username"`
		AvatarNormal string `json:"avatar_normal"`
	} `json:"member"`
}

// FetchV2EX fetches the replies of a V2EX topic. The reply list at this
// endpoint is flat and carries no scores. Never fails; on any error it
// logs the cause and returns an empty list.
func FetchV2EX(ctx context.Context, rawURL string, opts *models.Options) []models.Comment {
	comments, err := fetchV2EX(ctx, rawURL, opts.WithDefaults())
	if err != nil {
		log.Errorf("[v2ex] failed to fetch comments for %s: %v", rawURL, err)
		return []models.Comment{}
	}
	return comments
}

func fetchV2EX(ctx context.Context, rawURL string, opts models.Options) ([]models.Comment, error) {
	m := v2exTopicRe.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("no topic ID in URL %q", rawURL)
	}

	var replies []v2exReply
	if err := getJSON(ctx, fmt.Sprintf(v2exRepliesURL, m[1]), opts.UserAgent, &replies); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(replies))
	for _, reply := range replies {
		author := reply.Member.Username
		if author == "" {
			author = models.AnonymousAuthor
		}

		comments = append(comments, models.Comment{
			ID:        fmt.Sprintf("v2ex-%d", reply.ID),
			Author:    author,
			Content:   reply.Content,
			Timestamp: isoFromUnix(reply.Created),
			Platform:  TagV2EX,
			Avatar:    reply.Member.AvatarNormal,
		})
	}

	return comments, nil
}
