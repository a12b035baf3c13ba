// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding audit events.
const CollectionName = "audit_events"

// Event categories
const (
	CategoryAdmin = "admin"
)

// Resources an admin event can target.
const (
	ResourceStudent = "student"
	ResourceCohort  = "cohort"
	ResourceFaculty = "faculty"
	ResourceCourse  = "course"
	ResourceResult  = "result"
)

// Actions recorded per resource.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Admin event types
const (
	EventStudentCreated = "student_created"
	EventStudentUpdated = "student_updated"
	EventStudentDeleted = "student_deleted"
	EventCohortCreated  = "cohort_created"
	EventCohortUpdated  = "cohort_updated"
	EventCohortDeleted  = "cohort_deleted"
	EventFacultyCreated = "faculty_created"
	EventFacultyUpdated = "faculty_updated"
	EventFacultyDeleted = "faculty_deleted"
	EventCourseCreated  = "course_created"
	EventCourseUpdated  = "course_updated"
	EventCourseDeleted  = "course_deleted"
	EventResultCreated  = "result_created"
	EventResultUpdated  = "result_updated"
	EventResultDeleted  = "result_deleted"
)

// EventType joins a resource and an action ("student" + "created").
func EventType(resource, action string) string {
	return resource + "_" + action
}

// Event represents an audit event.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`

	// Event classification
	Category  string `bson:"category"`
	EventType string `bson:"event_type"`
	Resource  string `bson:"resource"`

	// Backend identifier of the affected record ("12", or "3/7" for results).
	TargetID string `bson:"target_id,omitempty"`

	// Context
	IP        string `bson:"ip"`
	UserAgent string `bson:"user_agent,omitempty"`
	RequestID string `bson:"request_id,omitempty"`

	// Outcome
	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Additional details (varies by event type)
	Details map[string]string `bson:"details,omitempty"`
}

// QueryFilter defines filters for querying audit events.
type QueryFilter struct {
	Resource  string
	EventType string
	TargetID  string
	Success   *bool
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int64
	Offset    int64
}

func (f QueryFilter) bson() bson.M {
	query := bson.M{}
	if f.Resource != "" {
		query["resource"] = f.Resource
	}
	if f.EventType != "" {
		query["event_type"] = f.EventType
	}
	if f.TargetID != "" {
		query["target_id"] = f.TargetID
	}
	if f.Success != nil {
		query["success"] = *f.Success
	}
	if f.StartTime != nil || f.EndTime != nil {
		timeQuery := bson.M{}
		if f.StartTime != nil {
			timeQuery["$gte"] = *f.StartTime
		}
		if f.EndTime != nil {
			timeQuery["$lte"] = *f.EndTime
		}
		query["timestamp"] = timeQuery
	}
	return query
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Most recent first
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		// History of one record
		{
			Keys: bson.D{
				{Key: "resource", Value: 1},
				{Key: "target_id", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "event_type", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Log records an audit event.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// Query retrieves audit events matching the given filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cursor, err := s.c.Find(ctx, filter.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching the filter.
func (s *Store) Count(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, filter.bson())
}

// GetRecent retrieves the most recent audit events.
func (s *Store) GetRecent(ctx context.Context, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{Limit: limit})
}

// GetForTarget retrieves the history of one backend record.
func (s *Store) GetForTarget(ctx context.Context, resource, targetID string, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{Resource: resource, TargetID: targetID, Limit: limit})
}
