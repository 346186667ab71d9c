// internal/domain/models/student.go
package models

import "time"

// Student is one row of the uploaded student roster.
//
// NOTE:
//   - ID is the roster identifier (e.g. "STU001"), not a Mongo ObjectID.
//     It is stored as the document _id so it is unique per roster.
//   - Seq is the 0-based position in the uploaded file. Every engine that
//     depends on "list order" sorts by Seq.
//   - SPOC is the coordinator tag used only for filtering.
type Student struct {
	ID     string `bson:"_id" json:"id"`
	Seq    int    `bson:"seq" json:"seq"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"`
	Email  string `bson:"email" json:"email"`
	Phone  string `bson:"phone" json:"phone"`
	SPOC   string `bson:"spoc" json:"spoc"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
