// Package youtube implements channel-ID resolution and live-status
// detection against YouTube's public channel pages.
//
// No API key is involved: the only signal consulted is the canonical link
// of the channel's /live page, which points at a watch URL while the
// channel is broadcasting and back at the channel otherwise. Resolution of
// handles and custom URLs works the same way, reading the canonical link of
// the fetched channel page.
package youtube
