package services

import (
	"context"
	"fmt"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PreferencesService stores per-user settings in MongoDB. The whole service
// is optional; callers get sensible defaults when Mongo is not configured.
type PreferencesService struct {
	mongo *database.MongoDB
}

// NewPreferencesService creates a new preferences service. mongodb may be nil.
func NewPreferencesService(mongodb *database.MongoDB) *PreferencesService {
	return &PreferencesService{mongo: mongodb}
}

// Available reports whether the backing store is configured
func (s *PreferencesService) Available() bool {
	return s.mongo != nil
}

func defaultPreferences(userID string) *models.UserPreferences {
	return &models.UserPreferences{
		UserID:      userID,
		Currency:    "INR",
		WaterGoalMl: 2000,
		HomeRegion:  "All",
	}
}

// Get returns a user's preferences, falling back to defaults when none are
// stored or Mongo is unavailable
func (s *PreferencesService) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	if s.mongo == nil {
		return defaultPreferences(userID), nil
	}

	var prefs models.UserPreferences
	err := s.mongo.Collection(database.CollectionPreferences).
		FindOne(ctx, bson.M{"userId": userID}).
		Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return defaultPreferences(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	return &prefs, nil
}

// Update applies a partial update and returns the merged preferences
func (s *PreferencesService) Update(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (*models.UserPreferences, error) {
	if s.mongo == nil {
		return nil, fmt.Errorf("preferences storage not configured")
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Currency != nil {
		set["currency"] = *req.Currency
	}
	if req.WaterGoalMl != nil {
		if *req.WaterGoalMl <= 0 {
			return nil, fmt.Errorf("waterGoalMl must be positive")
		}
		set["waterGoalMl"] = *req.WaterGoalMl
	}
	if req.HomeRegion != nil {
		set["homeRegion"] = *req.HomeRegion
	}
	if req.AssistantModel != nil {
		set["assistantModel"] = *req.AssistantModel
	}
	if req.DigestEnabled != nil {
		set["digestEnabled"] = *req.DigestEnabled
	}

	defaults := defaultPreferences(userID)
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"userId": userID,
		},
	}
	// Seed defaults only for fields this update does not touch
	onInsert := update["$setOnInsert"].(bson.M)
	if req.Currency == nil {
		onInsert["currency"] = defaults.Currency
	}
	if req.WaterGoalMl == nil {
		onInsert["waterGoalMl"] = defaults.WaterGoalMl
	}
	if req.HomeRegion == nil {
		onInsert["homeRegion"] = defaults.HomeRegion
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.mongo.Collection(database.CollectionPreferences).
		UpdateOne(ctx, bson.M{"userId": userID}, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return s.Get(ctx, userID)
}
