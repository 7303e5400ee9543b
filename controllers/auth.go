package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/models"
	"github.com/homehunt-ie/backend/session"
	"github.com/homehunt-ie/backend/store"
	"github.com/homehunt-ie/backend/utils"
)

// Signup hashes the password and creates the user. Email uniqueness is
// enforced atomically by the store, so a duplicate surfaces as 409 rather
// than a silent second account.
func Signup(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding signup payload: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if err := req.Validate(); err != nil {
			log.Printf("Invalid signup data: %v", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		hashedPwd, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		user, err := s.CreateUser(r.Context(), models.InsertUser{
			Email:    req.Email,
			Password: hashedPwd,
			Name:     req.Name,
		})
		if err == store.ErrEmailTaken {
			log.Printf("Email already exists: %s", req.Email)
			respondError(w, http.StatusConflict, "Email already exists")
			return
		}
		if err != nil {
			log.Printf("Error creating user: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		respondJSON(w, http.StatusCreated, user)
	}
}

// Login verifies credentials and issues a session cookie. Unknown emails and
// wrong passwords get the same 401 so account existence is not leaked.
func Login(s store.Store, sessions session.Store, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding login payload: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if err := req.Validate(); err != nil {
			log.Printf("Invalid login data: %v", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := s.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			if err != store.ErrNotFound {
				log.Printf("Error looking up user: %v", err)
			}
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if !utils.CheckPasswordHash(req.Password, user.Password) {
			log.Printf("Invalid credentials for user: %s", req.Email)
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := issueSession(w, r, sessions, user, ttl); err != nil {
			log.Printf("Error creating session: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to log in")
			return
		}

		respondJSON(w, http.StatusOK, Response{Message: "Login successful"})
	}
}

// TokenSignIn is the third-party sign-in boundary: it verifies a
// provider-signed identity token, finds or creates the matching user, and
// issues a session.
func TokenSignIn(s store.Store, sessions session.Store, tokenKey string, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tokenKey == "" {
			respondError(w, http.StatusNotImplemented, "Token sign-in is not configured")
			return
		}

		var req models.TokenSignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding token payload: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if err := req.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		claims, err := utils.ValidateIdentityToken(req.Token, tokenKey)
		if err != nil {
			log.Printf("Invalid identity token: %v", err)
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := s.GetUserByEmail(r.Context(), claims.Email)
		if err == store.ErrNotFound {
			// Provider-backed accounts carry no local password; the empty
			// hash can never match a login attempt.
			user, err = s.CreateUser(r.Context(), models.InsertUser{
				Email: claims.Email,
				Name:  claims.Name,
			})
		}
		if err != nil {
			log.Printf("Error resolving token user: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to sign in")
			return
		}

		if err := issueSession(w, r, sessions, user, ttl); err != nil {
			log.Printf("Error creating session: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to sign in")
			return
		}

		respondJSON(w, http.StatusOK, Response{Message: "Login successful"})
	}
}

// Logout destroys the session and clears the cookie.
func Logout(sessions session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err == nil {
			if err := sessions.Destroy(r.Context(), cookie.Value); err != nil {
				log.Printf("Error destroying session: %v", err)
				respondError(w, http.StatusInternalServerError, "Failed to log out")
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		respondJSON(w, http.StatusOK, Response{Message: "Logged out"})
	}
}

// Me returns the identity held in the current session.
func Me(sessions session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		sess, err := sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if err != session.ErrNotFound {
				log.Printf("Error loading session: %v", err)
			}
			respondError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		respondJSON(w, http.StatusOK, sess)
	}
}

func issueSession(w http.ResponseWriter, r *http.Request, sessions session.Store, user *models.User, ttl time.Duration) error {
	id, err := sessions.Create(r.Context(), session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
