package models

import (
	"errors"
	"strings"
	"time"
)

// User is an account created through sign-up or third-party token sign-in.
// Users are read by email (login) or id and are never updated or deleted.
type User struct {
	ID        int64     `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertUser is what the store receives when creating a user. Password must
// already be hashed by the caller.
type InsertUser struct {
	Email    string
	Password string
	Name     string
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *SignupRequest) Validate() error {
	if !looksLikeEmail(r.Email) {
		return errors.New("a valid email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// TokenSignInRequest carries an identity token issued by the third-party
// auth provider.
type TokenSignInRequest struct {
	Token string `json:"token"`
}

func (r *TokenSignInRequest) Validate() error {
	if r.Token == "" {
		return errors.New("token is required")
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
