package youtube

import (
	"context"
	"regexp"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

// watchCanonicalRe matches the canonical link of a live channel page, which
// redirects to the broadcast's watch URL. A canonical link pointing anywhere
// else (typically back at the channel) means the channel is not live.
var watchCanonicalRe = regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`)

// CheckLive fetches the channel's /live page and decides whether the channel
// is currently broadcasting. It never fails by signaling: fetch and parse
// failures are folded into the returned status' error field.
func (c *Client) CheckLive(ctx context.Context, id domain.ChannelID) domain.LiveStatus {
	liveURL := c.BaseURL + "/channel/" + id.String() + "/live"

	doc, err := c.fetchDocument(ctx, liveURL)
	if err != nil {
		return domain.LiveStatus{Err: err.Error()}
	}

	canonical, ok := canonicalLink(doc)
	if !ok {
		return domain.LiveStatus{Err: domain.ErrNoCanonicalLink.Error()}
	}

	m := watchCanonicalRe.FindStringSubmatch(canonical)
	if m == nil {
		return domain.LiveStatus{}
	}

	status := domain.LiveStatus{
		IsLive:        true,
		LivestreamURL: DefaultBaseURL + "/watch?v=" + m[1],
	}
	if title, ok := metaTitle(doc); ok {
		status.Title = title
	}
	return status
}
