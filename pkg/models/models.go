// Package models defines the canonical, platform-agnostic comment tree
// shape shared by all platform fetchers, plus the caller-facing input types.
package models

// AnonymousAuthor is substituted when a source record carries no author.
const AnonymousAuthor = "Anonymous"

const (
	// DefaultUserAgent identifies the fetcher to the upstream platforms.
	DefaultUserAgent = "discussing/1.0 (+https://github.com/metrue/discussing)"

	// DefaultCacheTimeout is the cache lifetime in seconds applied when
	// the caller leaves Options.CacheTimeout unset.
	DefaultCacheTimeout = 300
)

// Comment is one node of the unified comment tree. Every node, at every
// depth, carries the tag of the platform that produced it.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
	Platform  string    `json:"platform"`
	Votes     *int      `json:"votes,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Replies   []Comment `json:"replies,omitempty"`
}

// Discussion identifies one external thread to fetch: a platform tag plus
// the thread's public URL on that platform.
type Discussion struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Options carries the ambient fetch settings applied uniformly to every
// platform call within one fetch. The zero value (or a nil pointer) means
// "all defaults". A negative CacheTimeout disables caching for the call.
type Options struct {
	CacheTimeout int
	UserAgent    string
}

// WithDefaults returns a copy of the options with unset fields filled in.
// Safe to call on a nil receiver.
func (o *Options) WithDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.CacheTimeout == 0 {
		out.CacheTimeout = DefaultCacheTimeout
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	return out
}
