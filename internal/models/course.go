package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CourseCollection = "cursos"

type Course struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CourseCode string             `json:"curso_id" bson:"curso_id"` // Client supplied, uniqueness not enforced
	Name       string             `json:"nomeDoCurso" bson:"nomeDoCurso"`
}

type CourseFields struct {
	ID         string  `json:"_id,omitempty" bson:"-"`
	CourseCode *string `json:"curso_id,omitempty" bson:"curso_id,omitempty"`
	Name       *string `json:"nomeDoCurso,omitempty" bson:"nomeDoCurso,omitempty"`
}

func (p CourseFields) Document() bson.D {
	set := bson.D{}
	if p.CourseCode != nil {
		set = append(set, bson.E{Key: "curso_id", Value: *p.CourseCode})
	}
	if p.Name != nil {
		set = append(set, bson.E{Key: "nomeDoCurso", Value: *p.Name})
	}
	return set
}

func (p CourseFields) Apply(c *Course) {
	if p.CourseCode != nil {
		c.CourseCode = *p.CourseCode
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
}
