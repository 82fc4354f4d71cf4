package models

import (
	"strings"

	"gorm.io/gorm"
)

const (
	RoleConsumer = "consumer"
	RoleFarmer   = "farmer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Fullname               string `json:"fullname"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	County                 string `json:"county"`
	Password               string `json:"password"`
	Role                   string `json:"role"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `json:"-"`
	PasswordResetToken     string `json:"-"`
}

type LoginData struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// NormalizePhone reduces a Liberian phone number to its local form so that
// "+2310770123456", "2310770123456" and "0770123456" compare equal. Spaces
// and dashes are dropped first.
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	cleaned = strings.TrimPrefix(cleaned, "+231")
	if len(cleaned) > 10 && strings.HasPrefix(cleaned, "231") {
		cleaned = strings.TrimPrefix(cleaned, "231")
	}
	if cleaned != "" && !strings.HasPrefix(cleaned, "0") {
		cleaned = "0" + cleaned
	}
	return cleaned
}

// MatchesAccount reports whether any existing account already claims the
// email or the phone number. Phones on both sides are compared in
// normalized form; registration is rejected on a match, and the existing
// accounts are never altered.
func MatchesAccount(users []User, email, phone string) bool {
	normalized := NormalizePhone(phone)
	for _, user := range users {
		if email != "" && user.Email == email {
			return true
		}
		if normalized != "" && NormalizePhone(user.Phone) == normalized {
			return true
		}
	}
	return false
}
