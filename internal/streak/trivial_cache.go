package streak

import (
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TrivialCache remembers that a user produced a trivial roll in a channel.
// Markers are keyed by a fixed-width time bucket and only the current and the
// previous bucket are consulted, so markers age out as time advances. The
// LRU TTL of two bucket widths only bounds memory.
type TrivialCache struct {
	lru    *expirable.LRU[string, struct{}]
	bucket time.Duration
}

// NewTrivialCache creates a cache holding at most size markers.
// Non-positive arguments fall back to the defaults.
func NewTrivialCache(size int, bucket time.Duration) *TrivialCache {
	if size <= 0 {
		size = DefaultTrivialCacheSize
	}
	if bucket <= 0 {
		bucket = DefaultBucketWidth
	}
	return &TrivialCache{
		lru:    expirable.NewLRU[string, struct{}](size, nil, 2*bucket),
		bucket: bucket,
	}
}

// BucketWidth returns the configured bucket width
func (c *TrivialCache) BucketWidth() time.Duration {
	return c.bucket
}

// Mark records a trivial roll at time at
func (c *TrivialCache) Mark(guildID, userID, channelID string, at time.Time) {
	c.lru.Add(c.key(guildID, userID, channelID, c.bucketOf(at)), struct{}{})
}

// Seen reports whether a trivial roll was marked in the bucket of at or the one before it
func (c *TrivialCache) Seen(guildID, userID, channelID string, at time.Time) bool {
	b := c.bucketOf(at)
	if c.lru.Contains(c.key(guildID, userID, channelID, b)) {
		return true
	}
	return c.lru.Contains(c.key(guildID, userID, channelID, b-1))
}

// Len returns the number of markers held
func (c *TrivialCache) Len() int {
	return c.lru.Len()
}

func (c *TrivialCache) bucketOf(at time.Time) int64 {
	return at.UnixNano() / int64(c.bucket)
}

func (c *TrivialCache) key(guildID, userID, channelID string, bucket int64) string {
	return strings.Join([]string{guildID, userID, channelID, strconv.FormatInt(bucket, 10)}, ":")
}
