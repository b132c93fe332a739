package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/rendi001-code/projekrela/internal/api/services"
	"github.com/rendi001-code/projekrela/internal/config"
	"github.com/rendi001-code/projekrela/internal/models"
)

// GET /auth/google/login?redirect=login|register
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	redirectType := r.URL.Query().Get("redirect") // "login" or "register"
	if redirectType == "" {
		redirectType = "login" // default
	}

	state, err := GenerateState(map[string]string{"flow": redirectType})
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	url := services.GoogleOauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	stateData, err := DecodeState(state)
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	flowType := stateData["flow"] // "login" or "register"
	code := r.FormValue("code")

	token, err := services.GoogleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Println("Exchange error:", err)
		http.Error(w, "Code exchange failed", http.StatusInternalServerError)
		return
	}

	client := services.GoogleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	if err := json.Unmarshal(data, &googleUser); err != nil {
		http.Error(w, "Failed to parse user info", http.StatusInternalServerError)
		return
	}

	frontend := config.Envs.FrontendURL
	user, exists := h.Store.FindUserByEmail(googleUser.Email)

	switch flowType {
	case "register":
		// If registering but user already exists
		if exists {
			http.Redirect(w, r, frontend+"/login.html?error=user_already_exists", http.StatusTemporaryRedirect)
			return
		}
		picture := googleUser.Picture
		if picture == "" {
			picture = defaultProfilePicture
		}
		user = models.User{
			ID:             uuid.NewString(),
			Email:          googleUser.Email,
			Password:       "", // Google-authenticated
			ProfilePicture: picture,
		}
		h.Store.AddUser(user)

	case "login":
		// If logging in but user not found
		if !exists {
			http.Redirect(w, r, frontend+"/register.html?error=user_not_found", http.StatusTemporaryRedirect)
			return
		}
	}

	if err := setSessionCookie(w, user); err != nil {
		http.Error(w, "Failed to create JWT", http.StatusInternalServerError)
		return
	}

	// Redirect user
	redirectURL := frontend + "/chat.html?status=success_login"
	if flowType == "register" {
		redirectURL = frontend + "/chat.html?status=success_register"
	}

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}
