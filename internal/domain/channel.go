package domain

import "regexp"

// ChannelID is a canonical YouTube channel identifier: "UC" followed by
// exactly 22 characters of [A-Za-z0-9_-]. It is never partially normalized;
// a value either matches the pattern in full or is not a ChannelID.
type ChannelID string

const channelIDPattern = `UC[a-zA-Z0-9_-]{22}`

var (
	channelIDExact  = regexp.MustCompile(`^` + channelIDPattern + `$`)
	channelIDSearch = regexp.MustCompile(channelIDPattern)
)

func (id ChannelID) String() string { return string(id) }

// IsChannelID reports whether s, in its entirety, is a canonical channel ID.
func IsChannelID(s string) bool {
	return channelIDExact.MatchString(s)
}

// FindChannelID returns the first channel-ID-shaped substring of s.
// Matching is purely lexical: an ID embedded anywhere in s (including a
// query parameter) is returned. This mirrors how channel URLs are scanned.
func FindChannelID(s string) (ChannelID, bool) {
	m := channelIDSearch.FindString(s)
	if m == "" {
		return "", false
	}
	return ChannelID(m), true
}
