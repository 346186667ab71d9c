// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/mentorhub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	// Rosters
	ensure("students", studentsSchema())
	ensure("mentors", mentorsSchema())

	// Schedule output
	ensure("assignments", assignmentsSchema())
	ensure("gd_groups", gdGroupsSchema())
	ensure("schedule_runs", runsSchema())

	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonEmpty = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

var isoDate = bson.M{"bsonType": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}

func slotEnum() bson.A {
	return bson.A{models.SlotAfternoon, models.SlotEvening}
}

func studentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "seq", "name"},
			"properties": bson.M{
				"_id":     nonEmpty,
				"seq":     bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"name":    nonEmpty,
				"name_ci": bson.M{"bsonType": "string"},
				"email":   bson.M{"bsonType": "string"},
				"phone":   bson.M{"bsonType": "string"},
				"spoc":    bson.M{"bsonType": "string"},
			},
		},
	}
}

func mentorsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "seq", "name", "availability", "available_slots"},
			"properties": bson.M{
				"_id":          nonEmpty,
				"seq":          bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"name":         nonEmpty,
				"availability": bson.M{"bsonType": "array", "items": isoDate},
				"available_slots": bson.M{
					"bsonType": "array",
					"items":    bson.M{"enum": slotEnum()},
				},
			},
		},
	}
}

func assignmentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "run_id", "seq", "student_id", "mentor_id", "type", "date", "slot", "slot_type", "status"},
			"properties": bson.M{
				"_id":        nonEmpty,
				"run_id":     nonEmpty,
				"seq":        bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"student_id": nonEmpty,
				"mentor_id":  nonEmpty,
				"type":       bson.M{"enum": bson.A{models.SessionPI, models.SessionGD}},
				"date":       isoDate,
				"slot":       nonEmpty,
				"slot_type":  bson.M{"enum": slotEnum()},
				"zoom_link":  bson.M{"bsonType": "string", "maxLength": 500},
				"status":     bson.M{"enum": bson.A{models.AssignmentScheduled}},
			},
		},
	}
}

func gdGroupsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "run_id", "seq", "topic", "mentor_id", "date", "slot", "slot_type", "students"},
			"properties": bson.M{
				"_id":       nonEmpty,
				"run_id":    nonEmpty,
				"seq":       bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"topic":     nonEmpty,
				"mentor_id": nonEmpty,
				"date":      isoDate,
				"slot":      nonEmpty,
				"slot_type": bson.M{"enum": slotEnum()},
				"students": bson.M{
					"bsonType": "array",
					"maxItems": 6,
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"id", "status"},
						"properties": bson.M{
							"id":     nonEmpty,
							"status": bson.M{"enum": bson.A{models.AttendancePending, models.AttendanceIn, models.AttendanceOut}},
						},
					},
				},
			},
		},
	}
}

func runsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"_id", "seed", "created_at"},
			"properties": bson.M{
				"_id":           nonEmpty,
				"seed":          bson.M{"bsonType": bson.A{"int", "long"}},
				"student_count": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"mentor_count":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"created_at":    bson.M{"bsonType": "date"},
			},
		},
	}
}
