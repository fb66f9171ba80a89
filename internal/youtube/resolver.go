package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/metrics"
)

const (
	youtubeDomain      = "youtube.com"
	youtubeShortDomain = "youtu.be"
)

var errUnsupportedInput = errors.New("could not parse channel ID")

// urlRule classifies one syntactic shape of channel input and builds the
// URL to fetch for it. Rules are evaluated in order, first match wins.
type urlRule struct {
	name     string
	match    func(c *Client, input string) bool
	fetchURL func(c *Client, input string) string
}

var resolveRules = []urlRule{
	{
		name:     "handle",
		match:    func(_ *Client, in string) bool { return strings.HasPrefix(in, "@") },
		fetchURL: func(c *Client, in string) string { return c.BaseURL + "/" + in },
	},
	{
		name:     "handle_url",
		match:    func(_ *Client, in string) bool { return strings.Contains(in, youtubeDomain) && strings.Contains(in, "@") },
		fetchURL: func(_ *Client, in string) string { return in },
	},
	{
		name:     "custom_url",
		match:    func(_ *Client, in string) bool { return strings.Contains(in, youtubeDomain) && strings.Contains(in, "/c/") },
		fetchURL: func(_ *Client, in string) string { return in },
	},
	{
		name:     "legacy_user_url",
		match:    func(_ *Client, in string) bool { return strings.Contains(in, youtubeDomain) && strings.Contains(in, "/user/") },
		fetchURL: func(_ *Client, in string) string { return in },
	},
	{
		name: "channel_url",
		match: func(_ *Client, in string) bool {
			return strings.Contains(in, youtubeDomain) || strings.Contains(in, youtubeShortDomain)
		},
		fetchURL: func(_ *Client, in string) string { return in },
	},
	{
		name: "bare_handle",
		match: func(_ *Client, in string) bool {
			return !strings.HasPrefix(in, "http://") && !strings.HasPrefix(in, "https://")
		},
		fetchURL: func(c *Client, in string) string { return c.BaseURL + "/@" + in },
	},
}

// ResolveChannelID derives a canonical channel ID from raw input: a channel
// ID, any URL containing one, a handle ("@name" or a bare name), or a
// handle/custom/user/channel URL. Syntactic forms resolve without touching
// the network; the remaining shapes cost exactly one page fetch.
func (c *Client) ResolveChannelID(ctx context.Context, input string) (domain.ChannelID, error) {
	input = strings.TrimSpace(input)

	if domain.IsChannelID(input) {
		metrics.ResolutionsTotal.WithLabelValues("direct").Inc()
		return domain.ChannelID(input), nil
	}

	if id, ok := domain.FindChannelID(input); ok {
		metrics.ResolutionsTotal.WithLabelValues("substring").Inc()
		return id, nil
	}

	for _, rule := range resolveRules {
		if !rule.match(c, input) {
			continue
		}
		id, err := c.channelIDFromPage(ctx, rule.fetchURL(c, input))
		if err != nil {
			metrics.ResolutionsTotal.WithLabelValues("failed").Inc()
			return "", domain.NewResolutionError(input, err)
		}
		metrics.ResolutionsTotal.WithLabelValues("fetched").Inc()
		return id, nil
	}

	metrics.ResolutionsTotal.WithLabelValues("failed").Inc()
	return "", domain.NewResolutionError(input, errUnsupportedInput)
}

// channelIDFromPage fetches a channel-bearing page and extracts the channel
// ID from its canonical link.
func (c *Client) channelIDFromPage(ctx context.Context, url string) (domain.ChannelID, error) {
	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	canonical, ok := canonicalLink(doc)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNoCanonicalLink, url)
	}

	id, ok := domain.FindChannelID(canonical)
	if !ok {
		return "", fmt.Errorf("no channel ID in canonical URL %s", canonical)
	}
	return id, nil
}
