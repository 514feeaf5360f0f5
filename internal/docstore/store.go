// Package docstore exposes the collection-scoped document operations the
// HTTP handlers need: find, findOne, insertOne, updateOne and deleteOne.
//
// Two backends implement it. The MongoDB backend is used in production; the
// SQLite backend keeps JSON documents in a single table and serves local runs
// and tests.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// IDField is the key under which every document carries its store-assigned id.
const IDField = "_id"

// Document is a schemaless record. Values are whatever the JSON body or the
// driver produced.
type Document map[string]any

// String returns the field as a string, or "" when it is absent or not
// string-like. ObjectIDs come back as hex.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	default:
		return ""
	}
}

// Filter matches documents by exact equality on every listed field. A nil
// value matches a field that is missing or null.
type Filter map[string]any

// ByID is shorthand for a filter on the store-assigned id.
func ByID(id string) Filter { return Filter{IDField: id} }

// InsertResult mirrors the insertOne acknowledgment.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the updateOne acknowledgment.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult mirrors the deleteOne acknowledgment.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Collection interface {
	// Find returns all matching documents in insertion order. Never nil.
	Find(ctx context.Context, f Filter) ([]Document, error)
	// FindOne returns nil, nil when nothing matches.
	FindOne(ctx context.Context, f Filter) (Document, error)
	InsertOne(ctx context.Context, doc Document) (InsertResult, error)
	// UpdateOne applies set to the first match. With upsert and no match, a
	// document built from the filter's fields plus set is inserted.
	UpdateOne(ctx context.Context, f Filter, set Document, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, f Filter) (DeleteResult, error)
}

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var ErrUnknownDriver = errors.New("docstore: unknown driver")

// Decode maps a document onto a typed struct using its json tags.
func Decode(doc Document, v any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
