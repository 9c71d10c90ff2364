// Package connector holds the clients of external systems: the news,
// grid-price, telecom-speed and security REST APIs (go-resty) and the blob
// storages for profile pictures (Azure Blob Storage or the local
// filesystem). API failures carry recovery codes so callers can retry them
// through the strategy table.
package connector
