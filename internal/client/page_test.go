package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joaoafonso2004/TWfrontbackend/internal/config"
	"github.com/joaoafonso2004/TWfrontbackend/internal/database"
	"github.com/joaoafonso2004/TWfrontbackend/internal/routes"
)

func newService(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{Timeout: time.Second, Origins: []string{"*"}}
	srv := httptest.NewServer(routes.SetupRouter(database.NewMemoryStore(), cfg))
	t.Cleanup(srv.Close)
	return srv
}

func staticServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStudentRowsResolveCourseNames(t *testing.T) {
	srv := staticServer(t, map[string]string{
		"/cursos": `[{"_id":"507f1f77bcf86cd799439011","curso_id":"1","nomeDoCurso":"X"}]`,
		"/alunos": `[{"_id":"507f1f77bcf86cd799439012","cc":1,"nome":"Ana","apelido":"A","idade":20,"curso":"1"},
		             {"_id":"507f1f77bcf86cd799439013","cc":2,"nome":"Rui","apelido":"R","idade":21,"curso":"9"}]`,
	})
	page := NewPage(New(srv.URL, nil), nil)

	if err := page.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(page.Students) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Students))
	}
	if page.Students[0].CourseName != "X" {
		t.Fatalf("expected course name X, got %q", page.Students[0].CourseName)
	}
	if page.Students[1].CourseName != "9" {
		t.Fatalf("expected raw code fallback, got %q", page.Students[1].CourseName)
	}
	if len(page.CourseOptions) != 1 || page.CourseOptions[0] != (Option{Value: "1", Label: "1 - X"}) {
		t.Fatalf("unexpected dropdown %+v", page.CourseOptions)
	}
}

func TestNonArrayResponseShowsErrorRow(t *testing.T) {
	srv := staticServer(t, map[string]string{
		"/cursos": `[]`,
		"/alunos": `{"error":"boom"}`,
	})
	page := NewPage(New(srv.URL, nil), nil)

	if err := page.Refresh(context.Background()); err == nil {
		t.Fatalf("expected student load error")
	}
	if page.StudentStatus != StatusLoadingFailedStudents || page.Students != nil {
		t.Fatalf("expected error row, got status=%q rows=%v", page.StudentStatus, page.Students)
	}
	if page.CourseStatus != StatusNoCourses {
		t.Fatalf("expected empty course table, got %q", page.CourseStatus)
	}
}

func TestStudentFormLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newService(t)
	answer := false
	page := NewPage(New(srv.URL, nil), func(string) bool { return answer })

	page.CourseForm = CourseForm{Code: "1", Name: "Engenharia"}
	if err := page.SubmitCourse(ctx); err != nil {
		t.Fatalf("submit course: %v", err)
	}
	if len(page.Courses) != 1 || page.CourseForm != (CourseForm{}) {
		t.Fatalf("expected one course and a reset form, got %+v / %+v", page.Courses, page.CourseForm)
	}

	page.StudentForm = StudentForm{Name: " Ana ", Nickname: "A", Age: "20", Course: "1"}
	if err := page.SubmitStudent(ctx); err != nil {
		t.Fatalf("submit student: %v", err)
	}
	if len(page.Students) != 1 {
		t.Fatalf("expected one student, got %+v", page.Students)
	}
	row := page.Students[0]
	if row.Code != 1 || row.Name != "Ana" || row.CourseName != "Engenharia" {
		t.Fatalf("unexpected row %+v", row)
	}

	page.EditStudent(row)
	if !page.StudentForm.Editing || page.StudentForm.Age != "20" {
		t.Fatalf("expected editing form, got %+v", page.StudentForm)
	}
	page.StudentForm.Age = "21"
	if err := page.SubmitStudent(ctx); err != nil {
		t.Fatalf("update student: %v", err)
	}
	if len(page.Students) != 1 || page.Students[0].Age != 21 || page.Students[0].Code != 1 {
		t.Fatalf("expected updated row in place, got %+v", page.Students)
	}
	if page.StudentForm.Editing {
		t.Fatalf("submit should return to idle")
	}

	page.EditStudent(page.Students[0])
	page.CancelStudent()
	if page.StudentForm != (StudentForm{}) {
		t.Fatalf("cancel should clear the form, got %+v", page.StudentForm)
	}

	page.EditStudent(page.Students[0])
	if err := page.DeleteStudent(ctx); err != nil {
		t.Fatalf("declined delete: %v", err)
	}
	if len(page.Students) != 1 {
		t.Fatalf("declined delete must keep the student")
	}

	answer = true
	if err := page.DeleteStudent(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(page.Students) != 0 || page.StudentStatus != StatusNoStudents {
		t.Fatalf("expected empty table, got %+v %q", page.Students, page.StudentStatus)
	}
	if page.StudentForm.Editing {
		t.Fatalf("delete should return to idle")
	}
}

func TestCourseEditAndDelete(t *testing.T) {
	ctx := context.Background()
	page := NewPage(New(newService(t).URL, nil), nil)

	page.CourseForm = CourseForm{Code: "1", Name: "Engenharia"}
	if err := page.SubmitCourse(ctx); err != nil {
		t.Fatalf("submit course: %v", err)
	}
	page.EditCourse(page.Courses[0])
	page.CourseForm.Name = "Design"
	if err := page.SubmitCourse(ctx); err != nil {
		t.Fatalf("update course: %v", err)
	}
	if len(page.Courses) != 1 || page.Courses[0].Name != "Design" || page.Courses[0].CourseCode != "1" {
		t.Fatalf("unexpected courses %+v", page.Courses)
	}

	page.EditCourse(page.Courses[0])
	if err := page.DeleteCourse(ctx); err != nil {
		t.Fatalf("delete course: %v", err)
	}
	if len(page.Courses) != 0 || page.CourseStatus != StatusNoCourses {
		t.Fatalf("expected no courses, got %+v", page.Courses)
	}
}

func TestIncompleteFormSendsNothing(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	page := NewPage(New(srv.URL, nil), nil)

	forms := []StudentForm{
		{Name: "", Nickname: "A", Age: "20", Course: "1"},
		{Name: "Ana", Nickname: " ", Age: "20", Course: "1"},
		{Name: "Ana", Nickname: "A", Age: "vinte", Course: "1"},
		{Name: "Ana", Nickname: "A", Age: "20", Course: ""},
	}
	for _, form := range forms {
		page.StudentForm = form
		if err := page.SubmitStudent(context.Background()); !errors.Is(err, ErrIncompleteForm) {
			t.Fatalf("form %+v: expected ErrIncompleteForm, got %v", form, err)
		}
	}
	page.CourseForm = CourseForm{Code: "1"}
	if err := page.SubmitCourse(context.Background()); !errors.Is(err, ErrIncompleteForm) {
		t.Fatalf("expected ErrIncompleteForm for course, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestDeleteOnlyWhileEditing(t *testing.T) {
	page := NewPage(New("http://127.0.0.1:0", nil), nil)
	if err := page.DeleteStudent(context.Background()); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
	if err := page.DeleteCourse(context.Background()); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
}
