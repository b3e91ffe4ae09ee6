package database

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
)

// MemoryStore keeps both collections in process memory in insertion order.
// It mirrors Store, including the non-atomic enrollment code read.
type MemoryStore struct {
	mu       sync.RWMutex
	students []models.Student
	courses  []models.Course
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) ListStudents(_ context.Context) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Student{}, m.students...), nil
}

func (m *MemoryStore) GetStudent(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) FindStudentsByName(_ context.Context, name string) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Student{}
	for _, s := range m.students {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) MaxStudentCode(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	highest := 0
	for _, s := range m.students {
		if s.Code > highest {
			highest = s.Code
		}
	}
	return highest, nil
}

func (m *MemoryStore) InsertStudent(_ context.Context, fields models.StudentFields) (primitive.ObjectID, error) {
	student := models.Student{ID: primitive.NewObjectID()}
	fields.Apply(&student)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.students = append(m.students, student)
	return student.ID, nil
}

func (m *MemoryStore) UpdateStudent(_ context.Context, id primitive.ObjectID, set bson.D) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == id {
			fields, err := decodeSet[models.StudentFields](set)
			if err != nil {
				return false, err
			}
			fields.Apply(&m.students[i])
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) DeleteStudent(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) ListCourses(_ context.Context) ([]models.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Course{}, m.courses...), nil
}

func (m *MemoryStore) InsertCourse(_ context.Context, fields models.CourseFields) (primitive.ObjectID, error) {
	course := models.Course{ID: primitive.NewObjectID()}
	fields.Apply(&course)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses = append(m.courses, course)
	return course.ID, nil
}

func (m *MemoryStore) UpdateCourse(_ context.Context, id primitive.ObjectID, set bson.D) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.courses {
		if m.courses[i].ID == id {
			fields, err := decodeSet[models.CourseFields](set)
			if err != nil {
				return false, err
			}
			fields.Apply(&m.courses[i])
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) DeleteCourse(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

// decodeSet turns a $set body back into the fields type through a BSON round
// trip, the same representation the server would apply.
func decodeSet[T any](set bson.D) (T, error) {
	var fields T
	raw, err := bson.Marshal(set)
	if err != nil {
		return fields, err
	}
	err = bson.Unmarshal(raw, &fields)
	return fields, err
}
