package domain

// LiveStatus is the outcome of a single live-page inspection.
// Invariants: IsLive implies LivestreamURL is set; Err set implies IsLive
// is false and LivestreamURL/Title are empty. A status never mixes a
// partial success with an error.
type LiveStatus struct {
	IsLive        bool   `json:"is_live"`
	LivestreamURL string `json:"livestream_url,omitempty"`
	Title         string `json:"title,omitempty"`
	Err           string `json:"error,omitempty"`
}

// CheckResult is the caller-facing envelope around a resolution plus live
// check. Exactly one of ChannelID / ChannelIDOrURL is set: the former on
// successful resolution, the latter echoing the raw input when resolution
// itself failed.
type CheckResult struct {
	ChannelID      string `json:"channel_id,omitempty"`
	ChannelIDOrURL string `json:"channel_id_or_url,omitempty"`
	IsLive         bool   `json:"is_live"`
	LivestreamURL  string `json:"livestream_url,omitempty"`
	Title          string `json:"title,omitempty"`
	Error          string `json:"error,omitempty"`
	CheckedAt      string `json:"checked_at"`
}
