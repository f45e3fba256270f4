package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

const connectTimeout = 10 * time.Second

// MongoArchive stores records in a MongoDB collection keyed by run ID.
type MongoArchive struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoArchive connects to uri and verifies the server is reachable.
func NewMongoArchive(ctx context.Context, uri, database, collection string) (*MongoArchive, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "connect to archive")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "archive unreachable")
	}
	return &MongoArchive{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// mongoRecord is the stored document. The run ID is kept as its string
// form.
type mongoRecord struct {
	ID        string               `bson:"_id"`
	Source    string               `bson:"source"`
	Strict    bool                 `bson:"strict"`
	InputHash string               `bson:"input_hash"`
	CreatedAt time.Time            `bson:"created_at"`
	Analysis  *quadruplex.Analysis `bson:"analysis"`
}

func (a *MongoArchive) Save(ctx context.Context, rec *Record) error {
	doc := mongoRecord{
		ID:        rec.RunID.String(),
		Source:    rec.Source,
		Strict:    rec.Strict,
		InputHash: rec.InputHash,
		CreatedAt: rec.CreatedAt,
		Analysis:  rec.Analysis,
	}
	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "archive run %s", rec.RunID)
	}
	return nil
}

func (a *MongoArchive) Get(ctx context.Context, id uuid.UUID) (*Record, bool, error) {
	var doc mongoRecord
	err := a.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeNetwork, err, "read run %s", id)
	}
	return &Record{
		RunID:     id,
		Source:    doc.Source,
		Strict:    doc.Strict,
		InputHash: doc.InputHash,
		CreatedAt: doc.CreatedAt,
		Analysis:  doc.Analysis,
	}, true, nil
}

func (a *MongoArchive) Close() error {
	return a.client.Disconnect(context.Background())
}
