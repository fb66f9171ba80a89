// Package domain defines the core domain types and interfaces.
//
// Identifier and result types live here together with the ports the
// application layer depends on (resolver, live checker, notifier, stores).
// No implementation code - just contracts. Prevents circular imports by
// keeping interfaces on the consumer side.
package domain
