// Package app provides the application service layer.
//
// CheckService wraps a resolution plus live check into the caller-facing
// result envelope; Poller drives periodic checks of the monitored channel
// and announces new broadcasts. Both depend on domain interfaces, not
// concrete implementations.
package app
