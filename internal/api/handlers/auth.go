package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rendi001-code/projekrela/internal/api/middleware"
	"github.com/rendi001-code/projekrela/internal/config"
	"github.com/rendi001-code/projekrela/internal/models"
	"github.com/rendi001-code/projekrela/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const defaultProfilePicture = "/assets/default_profile.png"

// bcrypt cost the existing user records were hashed with.
const passwordHashCost = 10

// JWT Claims struct
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user with a bcrypt-hashed password and the default profile picture
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body handlers.credentials true "Email and password"
// @Success 201 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.MessageResponse
// @Router /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method not allowed"})
		return
	}

	var input credentials
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	if !utils.ValidInput(input.Email) || !utils.ValidInput(input.Password) {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	if _, exists := h.Store.FindUserByEmail(input.Email); exists {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to hash password"})
		return
	}

	h.Store.AddUser(models.User{
		ID:             uuid.NewString(),
		Email:          input.Email,
		Password:       string(hashedPassword),
		ProfilePicture: defaultProfilePicture,
	})

	utils.JSON(w, http.StatusCreated, MessageResponse{Message: "Registration successful"})
}

// Login godoc
// @Summary Log a user in
// @Description Verifies credentials, sets the session cookie and returns the user id
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body handlers.credentials true "Email and password"
// @Success 200 {object} handlers.LoginResponse
// @Failure 400 {object} handlers.MessageResponse
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method not allowed"})
		return
	}

	var input credentials
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	if !utils.ValidInput(input.Email) || !utils.ValidInput(input.Password) {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	user, ok := h.Store.FindUserByEmail(input.Email)
	if !ok {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Email is not registered"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Incorrect password"})
		return
	}

	if err := setSessionCookie(w, user); err != nil {
		utils.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to create token"})
		return
	}

	utils.JSON(w, http.StatusOK, LoginResponse{Message: "Login successful", UserID: user.ID})
}

// setSessionCookie signs a JWT for the user and attaches it as the token
// cookie.
func setSessionCookie(w http.ResponseWriter, user models.User) error {
	expiration := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.Envs.JWTSecret))
	if err != nil {
		return err
	}

	isProd := config.Envs.Environment == "production"
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(time.Until(expiration).Seconds()),
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
	return nil
}

// POST /api/v1/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	isProd := config.Envs.Environment == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "", // empty value
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GET /api/v1/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)
	user, ok := h.Store.FindUserByID(userID)
	if !ok {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "User not found",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile retrieved",
		Data:    user.Public(),
	})
}
