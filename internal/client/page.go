package client

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/joaoafonso2004/TWfrontbackend/internal/models"
)

// Messages shown in place of a table's rows.
const (
	StatusLoadingFailedStudents = "Erro ao carregar alunos."
	StatusLoadingFailedCourses  = "Erro ao carregar cursos."
	StatusNoStudents            = "Nenhum aluno cadastrado."
	StatusNoCourses             = "Nenhum curso cadastrado."

	confirmDeleteStudent = "Deseja realmente apagar este aluno?"
	confirmDeleteCourse  = "Deseja realmente apagar este curso?"
)

var (
	// ErrIncompleteForm is returned by a submit whose form fails validation.
	// Nothing is sent to the service.
	ErrIncompleteForm = errors.New("form is incomplete")
	// ErrNotEditing is returned by a delete outside editing mode.
	ErrNotEditing = errors.New("no record is being edited")
)

type StudentRow struct {
	ID         string
	Code       int
	Name       string
	Nickname   string
	Age        int
	Course     string // raw course code
	CourseName string // resolved name, or the raw code when unknown
}

// Option is one entry of the course dropdown.
type Option struct {
	Value string
	Label string
}

// StudentForm holds raw input values, as typed by the user.
type StudentForm struct {
	ID       string
	Name     string
	Nickname string
	Age      string
	Course   string
	Editing  bool
}

type CourseForm struct {
	ID      string
	Code    string
	Name    string
	Editing bool
}

// Page is the state behind the management page: two tables, two forms and
// the course list used to resolve a student's course name.
type Page struct {
	api     *Client
	confirm func(message string) bool

	StudentForm StudentForm
	CourseForm  CourseForm

	Students      []StudentRow
	StudentStatus string
	Courses       []models.Course
	CourseStatus  string
	CourseOptions []Option
}

// NewPage builds a page backed by api. confirm is asked before every delete;
// nil confirms everything.
func NewPage(api *Client, confirm func(message string) bool) *Page {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Page{api: api, confirm: confirm}
}

// Refresh loads courses and then students, so names resolve against a fresh
// course list.
func (p *Page) Refresh(ctx context.Context) error {
	courseErr := p.LoadCourses(ctx)
	studentErr := p.LoadStudents(ctx)
	return errors.Join(courseErr, studentErr)
}

// LoadCourses refreshes the course table, the dropdown and the cache.
func (p *Page) LoadCourses(ctx context.Context) error {
	courses, err := p.api.ListCourses(ctx)
	if err != nil {
		p.Courses = nil
		p.CourseStatus = StatusLoadingFailedCourses
		return err
	}

	p.Courses = courses
	p.CourseOptions = make([]Option, 0, len(courses))
	for _, c := range courses {
		p.CourseOptions = append(p.CourseOptions, Option{Value: c.CourseCode, Label: c.CourseCode + " - " + c.Name})
	}
	p.CourseStatus = ""
	if len(courses) == 0 {
		p.CourseStatus = StatusNoCourses
	}
	return nil
}

// LoadStudents refreshes the student table using the cached courses.
func (p *Page) LoadStudents(ctx context.Context) error {
	students, err := p.api.ListStudents(ctx)
	if err != nil {
		p.Students = nil
		p.StudentStatus = StatusLoadingFailedStudents
		return err
	}

	p.Students = p.rows(students)
	p.StudentStatus = ""
	if len(students) == 0 {
		p.StudentStatus = StatusNoStudents
	}
	return nil
}

// FindStudents looks students up by exact name without touching the table.
func (p *Page) FindStudents(ctx context.Context, name string) ([]StudentRow, error) {
	students, err := p.api.FindStudentsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.rows(students), nil
}

func (p *Page) rows(students []models.Student) []StudentRow {
	rows := make([]StudentRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, StudentRow{
			ID:         s.ID.Hex(),
			Code:       s.Code,
			Name:       s.Name,
			Nickname:   s.Nickname,
			Age:        s.Age,
			Course:     s.Course,
			CourseName: p.CourseName(s.Course),
		})
	}
	return rows
}

// CourseName resolves code with a linear scan of the cached courses.
func (p *Page) CourseName(code string) string {
	for _, c := range p.Courses {
		if c.CourseCode == code {
			if c.Name == "" {
				return code
			}
			return c.Name
		}
	}
	return code
}

func (p *Page) StudentByID(id string) (StudentRow, bool) {
	for _, row := range p.Students {
		if row.ID == id {
			return row, true
		}
	}
	return StudentRow{}, false
}

func (p *Page) CourseByID(id string) (models.Course, bool) {
	for _, c := range p.Courses {
		if c.ID.Hex() == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// EditStudent fills the student form from row and enters editing mode.
func (p *Page) EditStudent(row StudentRow) {
	p.StudentForm = StudentForm{
		ID:       row.ID,
		Name:     row.Name,
		Nickname: row.Nickname,
		Age:      strconv.Itoa(row.Age),
		Course:   row.Course,
		Editing:  true,
	}
}

func (p *Page) CancelStudent() {
	p.StudentForm = StudentForm{}
}

// SubmitStudent creates, or updates when editing, then resets the form and
// reloads the students.
func (p *Page) SubmitStudent(ctx context.Context) error {
	form := p.StudentForm
	name := strings.TrimSpace(form.Name)
	nickname := strings.TrimSpace(form.Nickname)
	age, ageErr := strconv.Atoi(strings.TrimSpace(form.Age))
	if name == "" || nickname == "" || ageErr != nil || form.Course == "" {
		return ErrIncompleteForm
	}

	fields := models.StudentFields{Name: &name, Nickname: &nickname, Age: &age, Course: &form.Course}
	var err error
	if form.Editing && form.ID != "" {
		_, err = p.api.UpdateStudent(ctx, form.ID, fields)
	} else {
		_, err = p.api.CreateStudent(ctx, fields)
	}
	p.CancelStudent()
	return errors.Join(err, p.LoadStudents(ctx))
}

// DeleteStudent removes the student being edited once confirmed.
func (p *Page) DeleteStudent(ctx context.Context) error {
	if !p.StudentForm.Editing || p.StudentForm.ID == "" {
		return ErrNotEditing
	}
	if !p.confirm(confirmDeleteStudent) {
		return nil
	}
	err := p.api.DeleteStudent(ctx, p.StudentForm.ID)
	p.CancelStudent()
	return errors.Join(err, p.LoadStudents(ctx))
}

func (p *Page) EditCourse(course models.Course) {
	p.CourseForm = CourseForm{
		ID:      course.ID.Hex(),
		Code:    course.CourseCode,
		Name:    course.Name,
		Editing: true,
	}
}

func (p *Page) CancelCourse() {
	p.CourseForm = CourseForm{}
}

func (p *Page) SubmitCourse(ctx context.Context) error {
	form := p.CourseForm
	code := strings.TrimSpace(form.Code)
	name := strings.TrimSpace(form.Name)
	if code == "" || name == "" {
		return ErrIncompleteForm
	}

	fields := models.CourseFields{CourseCode: &code, Name: &name}
	var err error
	if form.Editing && form.ID != "" {
		_, err = p.api.UpdateCourse(ctx, form.ID, fields)
	} else {
		_, err = p.api.CreateCourse(ctx, fields)
	}
	p.CancelCourse()
	return errors.Join(err, p.LoadCourses(ctx))
}

func (p *Page) DeleteCourse(ctx context.Context) error {
	if !p.CourseForm.Editing || p.CourseForm.ID == "" {
		return ErrNotEditing
	}
	if !p.confirm(confirmDeleteCourse) {
		return nil
	}
	err := p.api.DeleteCourse(ctx, p.CourseForm.ID)
	p.CancelCourse()
	return errors.Join(err, p.LoadCourses(ctx))
}
