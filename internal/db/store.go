package db

import (
	"context"
	"errors"

	"github.com/david/rfp-tracker/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names within the store.
const (
	CollOpportunities = "opportunities"
	CollCompliance    = "compliance"
	CollDocuments     = "documents"
	CollActivities    = "activities"
)

// listLimit bounds every list query. There is no pagination token.
const listLimit = 1000

// ErrNotFound is returned when an operation targets an id absent from its
// collection.
var ErrNotFound = errors.New("not found")

// noObjectID strips the store's internal identifier from results; the
// application-level "id" field is the authoritative identifier.
var noObjectID = bson.M{"_id": 0}

type Store struct {
	db *mongo.Database
}

func NewStore(database *mongo.Database) *Store {
	return &Store{db: database}
}

// Opportunities

func (s *Store) InsertOpportunity(ctx context.Context, o models.Opportunity) error {
	_, err := s.db.Collection(CollOpportunities).InsertOne(ctx, o)
	return err
}

func (s *Store) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	cur, err := s.db.Collection(CollOpportunities).Find(ctx, bson.M{},
		options.Find().SetLimit(listLimit).SetProjection(noObjectID))
	if err != nil {
		return nil, err
	}
	opportunities := []models.Opportunity{}
	if err := cur.All(ctx, &opportunities); err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (s *Store) GetOpportunity(ctx context.Context, id string) (models.Opportunity, error) {
	var o models.Opportunity
	err := s.db.Collection(CollOpportunities).FindOne(ctx, bson.M{"id": id},
		options.FindOne().SetProjection(noObjectID)).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return o, ErrNotFound
	}
	return o, err
}

func (s *Store) ReplaceOpportunity(ctx context.Context, o models.Opportunity) error {
	res, err := s.db.Collection(CollOpportunities).ReplaceOne(ctx, bson.M{"id": o.ID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteOpportunity(ctx context.Context, id string) error {
	res, err := s.db.Collection(CollOpportunities).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CountOpportunities(ctx context.Context) (int64, error) {
	return s.db.Collection(CollOpportunities).CountDocuments(ctx, bson.M{})
}

func (s *Store) CountOpportunitiesByStatus(ctx context.Context, status string) (int64, error) {
	return s.db.Collection(CollOpportunities).CountDocuments(ctx, bson.M{"status": status})
}

// Compliance items

func (s *Store) InsertComplianceItem(ctx context.Context, item models.ComplianceItem) error {
	_, err := s.db.Collection(CollCompliance).InsertOne(ctx, item)
	return err
}

func (s *Store) ListComplianceItems(ctx context.Context, opportunityID string) ([]models.ComplianceItem, error) {
	cur, err := s.db.Collection(CollCompliance).Find(ctx, bson.M{"opportunity_id": opportunityID},
		options.Find().SetLimit(listLimit).SetProjection(noObjectID))
	if err != nil {
		return nil, err
	}
	items := []models.ComplianceItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ReplaceComplianceItem(ctx context.Context, item models.ComplianceItem) error {
	res, err := s.db.Collection(CollCompliance).ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteComplianceItem(ctx context.Context, id string) error {
	res, err := s.db.Collection(CollCompliance).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Documents

func (s *Store) InsertDocument(ctx context.Context, doc models.Document) error {
	_, err := s.db.Collection(CollDocuments).InsertOne(ctx, doc)
	return err
}

func (s *Store) ListDocuments(ctx context.Context, opportunityID string) ([]models.Document, error) {
	cur, err := s.db.Collection(CollDocuments).Find(ctx, bson.M{"opportunity_id": opportunityID},
		options.Find().SetLimit(listLimit).SetProjection(noObjectID))
	if err != nil {
		return nil, err
	}
	docs := []models.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.db.Collection(CollDocuments).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Activities

func (s *Store) InsertActivity(ctx context.Context, a models.Activity) error {
	_, err := s.db.Collection(CollActivities).InsertOne(ctx, a)
	return err
}

// ListActivities returns the activity log for an opportunity, newest first.
func (s *Store) ListActivities(ctx context.Context, opportunityID string) ([]models.Activity, error) {
	cur, err := s.db.Collection(CollActivities).Find(ctx, bson.M{"opportunity_id": opportunityID},
		options.Find().
			SetLimit(listLimit).
			SetProjection(noObjectID).
			SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	activities := []models.Activity{}
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
