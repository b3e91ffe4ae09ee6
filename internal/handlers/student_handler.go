package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joaoafonso2004/TWfrontbackend/internal/apperrors"
	"github.com/joaoafonso2004/TWfrontbackend/internal/logger"
	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
	"github.com/joaoafonso2004/TWfrontbackend/internal/utils"
)

type StudentStore interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	FindStudentsByName(ctx context.Context, name string) ([]models.Student, error)
	MaxStudentCode(ctx context.Context) (int, error)
	InsertStudent(ctx context.Context, fields models.StudentFields) (primitive.ObjectID, error)
	UpdateStudent(ctx context.Context, id primitive.ObjectID, set bson.D) (bool, error)
	DeleteStudent(ctx context.Context, id primitive.ObjectID) error
}

type StudentHandler struct {
	store   StudentStore
	timeout time.Duration
}

func NewStudentHandler(store StudentStore, timeout time.Duration) *StudentHandler {
	return &StudentHandler{store: store, timeout: timeout}
}

// GetStudents returns every student in storage order
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	students, err := h.store.ListStudents(ctx)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// GetStudentByID answers null, not 404, when the student does not exist.
func (h *StudentHandler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	objID, err := utils.ParseObjectID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	student, err := h.store.GetStudent(ctx, objID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

// GetStudentsByName matches the name exactly
func (h *StudentHandler) GetStudentsByName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	students, err := h.store.FindStudentsByName(ctx, mux.Vars(r)["nome"])
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// CreateStudent stores the submitted fields with the next enrollment code.
// The code is max+1 read before the insert, so two concurrent creates can
// receive the same code.
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var fields models.StudentFields
	if err := decodeBody(r, &fields); err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	last, err := h.store.MaxStudentCode(ctx)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	code := last + 1
	fields.Code = &code

	id, err := h.store.InsertStudent(ctx, fields)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	fields.ID = id.Hex()

	logger.Info().Str("id", fields.ID).Int("cc", code).Msg("student created")
	writeJSON(w, http.StatusCreated, fields)
}

// UpdateStudent sets only the submitted fields and echoes them back with the
// id. Stored fields that were not submitted are not part of the response.
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := utils.ParseObjectID(id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	var fields models.StudentFields
	if err := decodeBody(r, &fields); err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	matched, err := h.store.UpdateStudent(ctx, objID, fields.Document())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if !matched {
		writeFailure(w, r, apperrors.ErrStudentNotFound)
		return
	}

	fields.ID = id
	writeJSON(w, http.StatusOK, fields)
}

// DeleteStudent does not check that the student existed
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	objID, err := utils.ParseObjectID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, h.timeout)
	defer cancel()

	if err := h.store.DeleteStudent(ctx, objID); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Aluno removido"})
}
