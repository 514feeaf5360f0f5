package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite stores every collection in one table of JSON bodies and filters with
// json_extract. Use ":memory:" for tests.
type SQLite struct{ db *sqlx.DB }

func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" is per-connection and writers serialize anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.seedIfEmpty(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  collection TEXT NOT NULL,
  id TEXT NOT NULL,
  body TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT,
  UNIQUE(collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts the static category reference data on a fresh database.
func (s *SQLite) seedIfEmpty(ctx context.Context) error {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM documents WHERE collection='category'`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting phone categories")

	cats := s.Collection("category")
	for _, c := range []Document{
		{IDField: "iphone", "name": "iPhone"},
		{IDField: "samsung", "name": "Samsung"},
		{IDField: "xiaomi", "name": "Xiaomi"},
	} {
		if _, err := cats.InsertOne(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) Collection(name string) Collection {
	return &sqliteCollection{db: s.db, name: name}
}

func (s *SQLite) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLite) Close(context.Context) error { return s.db.Close() }

type sqliteCollection struct {
	db   *sqlx.DB
	name string
}

type docRow struct {
	Seq  int64  `db:"seq"`
	ID   string `db:"id"`
	Body string `db:"body"`
}

var ErrUnsupportedFilter = errors.New("docstore: filter values must be scalars")

func (c *sqliteCollection) where(f Filter) (string, []any, error) {
	clauses := []string{"collection = ?"}
	args := []any{c.name}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := f[k]
		if k == IDField {
			id, ok := v.(string)
			if !ok {
				clauses = append(clauses, "0")
				continue
			}
			clauses = append(clauses, "id = ?")
			args = append(args, id)
			continue
		}
		if v == nil {
			clauses = append(clauses, "json_extract(body, ?) IS NULL")
			args = append(args, jsonPath(k))
			continue
		}
		val, err := sqlValue(v)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s", err, k)
		}
		clauses = append(clauses, "json_extract(body, ?) = ?")
		args = append(args, jsonPath(k), val)
	}
	return strings.Join(clauses, " AND "), args, nil
}

// jsonPath turns "a.b" into $."a"."b" so dotted keys address nested fields.
func jsonPath(key string) string {
	var b strings.Builder
	b.WriteString("$")
	for _, part := range strings.Split(key, ".") {
		b.WriteString(`."`)
		b.WriteString(strings.ReplaceAll(part, `"`, ``))
		b.WriteString(`"`)
	}
	return b.String()
}

// sqlValue maps a filter value onto what json_extract yields for it.
func sqlValue(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return int64(1), nil
		}
		return int64(0), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		return x.Float64()
	case string, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	default:
		return nil, ErrUnsupportedFilter
	}
}

func decodeRow(r docRow) (Document, error) {
	dec := json.NewDecoder(strings.NewReader(r.Body))
	dec.UseNumber()
	doc := Document{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.ID, err)
	}
	doc[IDField] = r.ID
	return doc, nil
}

func encodeBody(doc Document) (string, error) {
	body := make(Document, len(doc))
	for k, v := range doc {
		if k == IDField {
			continue
		}
		body[k] = v
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *sqliteCollection) Find(ctx context.Context, f Filter) ([]Document, error) {
	where, args, err := c.where(f)
	if err != nil {
		return nil, err
	}
	var rows []docRow
	if err := c.db.SelectContext(ctx, &rows, `SELECT seq, id, body FROM documents WHERE `+where+` ORDER BY seq`, args...); err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(rows))
	for _, r := range rows {
		doc, err := decodeRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *sqliteCollection) FindOne(ctx context.Context, f Filter) (Document, error) {
	where, args, err := c.where(f)
	if err != nil {
		return nil, err
	}
	var r docRow
	err = c.db.GetContext(ctx, &r, `SELECT seq, id, body FROM documents WHERE `+where+` ORDER BY seq LIMIT 1`, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeRow(r)
}

func (c *sqliteCollection) InsertOne(ctx context.Context, doc Document) (InsertResult, error) {
	id, _ := doc[IDField].(string)
	if id == "" {
		id = uuid.NewString()
	}
	body, err := encodeBody(doc)
	if err != nil {
		return InsertResult{}, err
	}
	if _, err := c.db.ExecContext(ctx, `INSERT INTO documents(collection, id, body) VALUES(?,?,?)`, c.name, id, body); err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *sqliteCollection) UpdateOne(ctx context.Context, f Filter, set Document, upsert bool) (UpdateResult, error) {
	where, args, err := c.where(f)
	if err != nil {
		return UpdateResult{}, err
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return UpdateResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var r docRow
	err = tx.GetContext(ctx, &r, `SELECT seq, id, body FROM documents WHERE `+where+` ORDER BY seq LIMIT 1`, args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if !upsert {
			return UpdateResult{Acknowledged: true}, nil
		}
		id, _ := f[IDField].(string)
		if id == "" {
			id = uuid.NewString()
		}
		doc := Document{}
		for k, v := range f {
			if k != IDField && v != nil {
				doc[k] = v
			}
		}
		for k, v := range set {
			doc[k] = v
		}
		body, err := encodeBody(doc)
		if err != nil {
			return UpdateResult{}, err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO documents(collection, id, body) VALUES(?,?,?)`, c.name, id, body); err != nil {
			return UpdateResult{}, err
		}
		if err := tx.Commit(); err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	case err != nil:
		return UpdateResult{}, err
	}

	doc, err := decodeRow(r)
	if err != nil {
		return UpdateResult{}, err
	}
	before, err := encodeBody(doc)
	if err != nil {
		return UpdateResult{}, err
	}
	for k, v := range set {
		if k != IDField {
			doc[k] = v
		}
	}
	after, err := encodeBody(doc)
	if err != nil {
		return UpdateResult{}, err
	}
	res := UpdateResult{Acknowledged: true, MatchedCount: 1}
	if before != after {
		if _, err := tx.ExecContext(ctx, `UPDATE documents SET body=?, updated_at=CURRENT_TIMESTAMP WHERE seq=?`, after, r.Seq); err != nil {
			return UpdateResult{}, err
		}
		res.ModifiedCount = 1
	}
	if err := tx.Commit(); err != nil {
		return UpdateResult{}, err
	}
	return res, nil
}

func (c *sqliteCollection) DeleteOne(ctx context.Context, f Filter) (DeleteResult, error) {
	where, args, err := c.where(f)
	if err != nil {
		return DeleteResult{}, err
	}
	res, err := c.db.ExecContext(ctx, `
	  DELETE FROM documents WHERE seq = (
	    SELECT seq FROM documents WHERE `+where+` ORDER BY seq LIMIT 1
	  )`, args...)
	if err != nil {
		return DeleteResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
