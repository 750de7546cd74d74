// Package gorm provides GORM-backed implementations of the store
// interfaces, targeting the embedded SQLite database.
//
// Each store wraps a *gorm.DB and translates driver errors into the
// sentinel errors defined in the parent store package. The database must be
// opened with TranslateError enabled so unique constraint violations
// surface as gorm.ErrDuplicatedKey.
package gorm
