package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials the cluster with the Stable API v1 and verifies the
// connection with a ping before returning.
func ConnectMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Collection(name string) Collection {
	return &mongoCollection{c: m.db.Collection(name)}
}

func (m *Mongo) Ping(ctx context.Context) error { return m.client.Ping(ctx, nil) }

func (m *Mongo) Close(ctx context.Context) error { return m.client.Disconnect(ctx) }

type mongoCollection struct{ c *mongo.Collection }

func (m *mongoCollection) Find(ctx context.Context, f Filter) ([]Document, error) {
	cur, err := m.c.Find(ctx, mongoFilter(f))
	if err != nil {
		return nil, err
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(raw))
	for _, r := range raw {
		out = append(out, Document(r))
	}
	return out, nil
}

func (m *mongoCollection) FindOne(ctx context.Context, f Filter) (Document, error) {
	var r bson.M
	err := m.c.FindOne(ctx, mongoFilter(f)).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Document(r), nil
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc Document) (InsertResult, error) {
	res, err := m.c.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (m *mongoCollection) UpdateOne(ctx context.Context, f Filter, set Document, upsert bool) (UpdateResult, error) {
	res, err := m.c.UpdateOne(ctx, mongoFilter(f), bson.M{"$set": bson.M(set)}, options.Update().SetUpsert(upsert))
	if err != nil {
		return UpdateResult{}, err
	}
	out := UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out, nil
}

func (m *mongoCollection) DeleteOne(ctx context.Context, f Filter) (DeleteResult, error) {
	res, err := m.c.DeleteOne(ctx, mongoFilter(f))
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// mongoFilter converts a hex _id into an ObjectID. Any other id string is
// kept as-is and simply matches nothing in a collection of ObjectIDs.
func mongoFilter(f Filter) bson.M {
	out := bson.M{}
	for k, v := range f {
		if k == IDField {
			if s, ok := v.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					out[k] = oid
					continue
				}
			}
		}
		out[k] = v
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
