package utils

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joaoafonso2004/TWfrontbackend/internal/apperrors"
)

var objectIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// IsValidObjectID reports whether id is exactly 24 hexadecimal characters.
func IsValidObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// ParseObjectID validates id and converts it to an ObjectID.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if !IsValidObjectID(id) {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return objID, nil
}
