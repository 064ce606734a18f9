// Package models contains GORM persistence models and their conversions to
// and from domain entities. Persistence concerns (column types, indexes,
// associations) live here so the domain stays storage-agnostic.
package models
