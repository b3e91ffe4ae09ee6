package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StudentCollection = "alunos"

type Student struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Code     int                `json:"cc" bson:"cc"` // Enrollment code, assigned on create
	Name     string             `json:"nome" bson:"nome"`
	Nickname string             `json:"apelido" bson:"apelido"`
	Age      int                `json:"idade" bson:"idade"`
	Course   string             `json:"curso" bson:"curso"` // Course.CourseCode, not validated
}

// StudentFields holds the fields a client submitted on create or update.
// A nil pointer means the field was not sent.
type StudentFields struct {
	ID       string  `json:"_id,omitempty" bson:"-"`
	Code     *int    `json:"cc,omitempty" bson:"cc,omitempty"`
	Name     *string `json:"nome,omitempty" bson:"nome,omitempty"`
	Nickname *string `json:"apelido,omitempty" bson:"apelido,omitempty"`
	Age      *int    `json:"idade,omitempty" bson:"idade,omitempty"`
	Course   *string `json:"curso,omitempty" bson:"curso,omitempty"`
}

// Document returns the submitted fields only, in a stable order.
func (p StudentFields) Document() bson.D {
	set := bson.D{}
	if p.Code != nil {
		set = append(set, bson.E{Key: "cc", Value: *p.Code})
	}
	if p.Name != nil {
		set = append(set, bson.E{Key: "nome", Value: *p.Name})
	}
	if p.Nickname != nil {
		set = append(set, bson.E{Key: "apelido", Value: *p.Nickname})
	}
	if p.Age != nil {
		set = append(set, bson.E{Key: "idade", Value: *p.Age})
	}
	if p.Course != nil {
		set = append(set, bson.E{Key: "curso", Value: *p.Course})
	}
	return set
}

// Apply copies the submitted fields onto s.
func (p StudentFields) Apply(s *Student) {
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Nickname != nil {
		s.Nickname = *p.Nickname
	}
	if p.Age != nil {
		s.Age = *p.Age
	}
	if p.Course != nil {
		s.Course = *p.Course
	}
}
