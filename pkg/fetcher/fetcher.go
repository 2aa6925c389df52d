// Package fetcher is the caller-facing entry point: it routes a single
// discussion to the matching platform fetcher and fans out aggregate
// fetches across platforms concurrently, isolating per-platform failures.
package fetcher

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/cache"
	"github.com/metrue/discussing/pkg/models"
	"github.com/metrue/discussing/pkg/platforms"
)

var store = cache.New()

// KnownPlatform reports whether tag is one of the supported platform tags.
func KnownPlatform(tag string) bool {
	for _, t := range platforms.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FetchComments fetches the comments of a single discussion, dispatching
// on its platform tag. An unrecognized tag yields a logged warning and an
// empty list, never an error. Successful non-empty results are cached for
// Options.CacheTimeout seconds.
func FetchComments(ctx context.Context, d models.Discussion, opts *models.Options) []models.Comment {
	o := opts.WithDefaults()
	key := d.Platform + "|" + d.URL

	if o.CacheTimeout > 0 {
		if comments, ok := store.Get(key); ok {
			log.Debugf("[fetcher] cache hit for %s", key)
			return comments
		}
	}

	var comments []models.Comment
	switch d.Platform {
	case platforms.TagV2EX:
		comments = platforms.FetchV2EX(ctx, d.URL, opts)
	case platforms.TagReddit:
		comments = platforms.FetchReddit(ctx, d.URL, opts)
	case platforms.TagHackerNews:
		comments = platforms.FetchHackerNews(ctx, d.URL, opts)
	default:
		log.Warnf("[fetcher] unknown platform %q, returning no comments", d.Platform)
		return []models.Comment{}
	}

	if o.CacheTimeout > 0 && len(comments) > 0 {
		store.Set(key, comments, time.Duration(o.CacheTimeout)*time.Second)
	}

	return comments
}

type fetchResult struct {
	platform string
	comments []models.Comment
}

// FetchAll fetches every discussion concurrently and returns a map from
// platform tag to its comment list. A failed platform contributes an
// empty list; the call as a whole never fails, even when every platform
// does. Duplicate platform tags in the input overwrite each other.
func FetchAll(ctx context.Context, discussions []models.Discussion, opts *models.Options) map[string][]models.Comment {
	resChan := make(chan fetchResult, len(discussions))
	var wg sync.WaitGroup

	wg.Add(len(discussions))
	for _, d := range discussions {
		go func(d models.Discussion) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("[fetcher] panic while fetching %s comments: %v", d.Platform, r)
					resChan <- fetchResult{platform: d.Platform, comments: []models.Comment{}}
				}
			}()

			resChan <- fetchResult{platform: d.Platform, comments: FetchComments(ctx, d, opts)}
		}(d)
	}

	wg.Wait()
	close(resChan)

	all := make(map[string][]models.Comment, len(discussions))
	for res := range resChan {
		all[res.platform] = res.comments
	}

	return all
}
