package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/budgetfly/budgetfly-api/models"
)

// Mongo implements Store against a MongoDB database. Documents are stored
// flat and queried by the `id` field, never by Mongo's native _id.
type Mongo struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

func NewMongo(client *mongo.Client, db *mongo.Database, timeout time.Duration) *Mongo {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mongo{client: client, db: db, timeout: timeout}
}

// opCtx bounds every store call so a stalled database cannot hold a request
// open indefinitely.
func (m *Mongo) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.timeout)
}

func (m *Mongo) InsertItem(ctx context.Context, item models.BudgetItem) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	if _, err := m.db.Collection(ItemCollection).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert budget item: %w", err)
	}
	return nil
}

func (m *Mongo) GetItem(ctx context.Context, id string) (models.BudgetItem, error) {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	var item models.BudgetItem
	err := m.db.Collection(ItemCollection).FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BudgetItem{}, ErrNotFound
	}
	if err != nil {
		return models.BudgetItem{}, fmt.Errorf("find budget item: %w", err)
	}
	return item, nil
}

func (m *Mongo) ListItems(ctx context.Context, limit int64) ([]models.BudgetItem, error) {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := m.db.Collection(ItemCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}

	items := []models.BudgetItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode budget items: %w", err)
	}
	return items, nil
}

func (m *Mongo) UpdateItem(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.db.Collection(ItemCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update budget item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.db.Collection(ItemCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) InsertMember(ctx context.Context, member models.FamilyMember) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	if _, err := m.db.Collection(MemberCollection).InsertOne(ctx, member); err != nil {
		return fmt.Errorf("insert family member: %w", err)
	}
	return nil
}

func (m *Mongo) ListMembers(ctx context.Context, limit int64) ([]models.FamilyMember, error) {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	cur, err := m.db.Collection(MemberCollection).Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}

	members := []models.FamilyMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decode family members: %w", err)
	}
	return members, nil
}

func (m *Mongo) DeleteMember(ctx context.Context, id string) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.db.Collection(MemberCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete family member: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
