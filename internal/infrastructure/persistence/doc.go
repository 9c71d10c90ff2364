// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store tariffs, news, blog and forum
// content, listings, the security catalog and accounts. Domain entities
// are validated before they are written and gorm errors are mapped onto
// the shared domain errors.
package persistence
