package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joaoafonso2004/TWfrontbackend/internal/apperrors"
	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
	"github.com/joaoafonso2004/TWfrontbackend/internal/utils"
)

type CourseStore interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	InsertCourse(ctx context.Context, fields models.CourseFields) (primitive.ObjectID, error)
	UpdateCourse(ctx context.Context, id primitive.ObjectID, set bson.D) (bool, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
}

type CourseHandler struct {
	store   CourseStore
	timeout time.Duration
}

func NewCourseHandler(store CourseStore, timeout time.Duration) *CourseHandler {
	return &CourseHandler{store: store, timeout: timeout}
}

// GetCourses retrieves all courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	courses, err := h.store.ListCourses(ctx)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

// CreateCourse handles creating a new course
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var fields models.CourseFields
	if err := decodeBody(r, &fields); err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	id, err := h.store.InsertCourse(ctx, fields)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	fields.ID = id.Hex()
	writeJSON(w, http.StatusCreated, fields)
}

// UpdateCourse updates course details
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := utils.ParseObjectID(id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	var fields models.CourseFields
	if err := decodeBody(r, &fields); err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	matched, err := h.store.UpdateCourse(ctx, objID, fields.Document())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if !matched {
		writeFailure(w, r, apperrors.ErrCourseNotFound)
		return
	}

	fields.ID = id
	writeJSON(w, http.StatusOK, fields)
}

// DeleteCourse deletes a course
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	objID, err := utils.ParseObjectID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	if err := h.store.DeleteCourse(ctx, objID); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Curso removido"})
}
