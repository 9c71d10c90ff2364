// Package recovery retries failed remote operations according to a static
// table of strategies keyed by backend error code, and raises a user facing
// notification once a strategy has run out of attempts.
package recovery
