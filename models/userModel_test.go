package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local form untouched", "0770123456", "0770123456"},
		{"international prefix stripped", "+2310770123456", "0770123456"},
		{"bare country code stripped", "2310770123456", "0770123456"},
		{"missing leading zero restored", "770123456", "0770123456"},
		{"spaces and dashes dropped", "+231 077-012-3456", "0770123456"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

// The duplicate-account check compares normalized phones, so a registration
// with the local form must collide with a stored international form.
func TestNormalizePhone_DuplicateForms(t *testing.T) {
	assert.Equal(t, NormalizePhone("+2310770123456"), NormalizePhone("0770123456"))
	assert.Equal(t, NormalizePhone("2310886123456"), NormalizePhone("0886123456"))
}

func TestMatchesAccount(t *testing.T) {
	existing := []User{
		{Fullname: "Fatu Kamara", Email: "fatu@example.lr", Phone: "+2310770123456"},
	}

	tests := []struct {
		name  string
		email string
		phone string
		want  bool
	}{
		{"same email", "fatu@example.lr", "0880999999", true},
		{"same phone, local form", "new@example.lr", "0770123456", true},
		{"same phone, country code form", "new@example.lr", "2310770123456", true},
		{"different account", "new@example.lr", "0880999999", false},
		{"blank candidate", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesAccount(existing, tt.email, tt.phone))
		})
	}
}

// Rejecting a duplicate must leave the stored accounts exactly as they were.
func TestMatchesAccount_DoesNotMutateExisting(t *testing.T) {
	existing := []User{
		{Fullname: "Fatu Kamara", Email: "fatu@example.lr", Phone: "+2310770123456"},
		{Fullname: "Moses Kollie", Email: "moses@example.lr", Phone: "0886123456"},
	}
	before := make([]User, len(existing))
	copy(before, existing)

	assert.True(t, MatchesAccount(existing, "fatu@example.lr", "0770123456"))
	assert.Equal(t, before, existing)
}
