package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
)

// Store is the data-access object for the students and courses collections.
type Store struct {
	students *mongo.Collection
	courses  *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		students: db.Collection(models.StudentCollection),
		courses:  db.Collection(models.CourseCollection),
	}
}

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	return findAll[models.Student](ctx, s.students, bson.M{})
}

// GetStudent returns nil without error when no student has the id.
func (s *Store) GetStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := s.students.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

func (s *Store) FindStudentsByName(ctx context.Context, name string) ([]models.Student, error) {
	return findAll[models.Student](ctx, s.students, bson.M{"nome": name})
}

// MaxStudentCode returns the highest enrollment code, or 0 for an empty
// collection. Reading it and inserting afterwards is not atomic.
func (s *Store) MaxStudentCode(ctx context.Context) (int, error) {
	opts := options.Find().SetSort(bson.D{{Key: "cc", Value: -1}}).SetLimit(1)
	last, err := findAll[models.Student](ctx, s.students, bson.M{}, opts)
	if err != nil {
		return 0, err
	}
	if len(last) == 0 {
		return 0, nil
	}
	return last[0].Code, nil
}

// InsertStudent stores the submitted fields under a new ObjectID.
func (s *Store) InsertStudent(ctx context.Context, fields models.StudentFields) (primitive.ObjectID, error) {
	return insert(ctx, s.students, fields.Document())
}

// UpdateStudent applies set with $set and reports whether a document matched.
func (s *Store) UpdateStudent(ctx context.Context, id primitive.ObjectID, set bson.D) (bool, error) {
	return updateByID(ctx, s.students, id, set)
}

func (s *Store) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.students.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	return findAll[models.Course](ctx, s.courses, bson.M{})
}

func (s *Store) InsertCourse(ctx context.Context, fields models.CourseFields) (primitive.ObjectID, error) {
	return insert(ctx, s.courses, fields.Document())
}

func (s *Store) UpdateCourse(ctx context.Context, id primitive.ObjectID, set bson.D) (bool, error) {
	return updateByID(ctx, s.courses, id, set)
}

func (s *Store) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.courses.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}

func insert(ctx context.Context, coll *mongo.Collection, fields bson.D) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	doc := append(bson.D{{Key: "_id", Value: id}}, fields...)
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", coll.Name(), err)
	}
	return id, nil
}

// An empty $set is rejected by the server, so a body with no known fields
// only checks that the document exists.
func updateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.D) (bool, error) {
	filter := bson.M{"_id": id}
	if len(set) == 0 {
		n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return false, fmt.Errorf("count %s: %w", coll.Name(), err)
		}
		return n > 0, nil
	}
	res, err := coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return res.MatchedCount > 0, nil
}
