package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/joaoafonso2004/TWfrontbackend/internal/apperrors"
)

func TestIsValidObjectID(t *testing.T) {
	cases := map[string]bool{
		"507f1f77bcf86cd799439011":  true,
		"507F1F77BCF86CD799439011":  true,
		strings.Repeat("a", 24):     true,
		strings.Repeat("0", 24):     true,
		"":                          false,
		"507f1f77bcf86cd79943901":   false,
		"507f1f77bcf86cd7994390111": false,
		"507f1f77bcf86cd79943901g":  false,
		"507f1f77-cf86cd799439011":  false,
		" 507f1f77bcf86cd799439011": false,
		"not-an-id":                 false,
	}
	for input, expect := range cases {
		if got := IsValidObjectID(input); got != expect {
			t.Fatalf("IsValidObjectID(%q) = %v, expected %v", input, got, expect)
		}
	}
}

func TestParseObjectID(t *testing.T) {
	objID, err := ParseObjectID("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if objID.Hex() != "507f1f77bcf86cd799439011" {
		t.Fatalf("expected round trip, got %s", objID.Hex())
	}
	if _, err := ParseObjectID("xyz"); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
