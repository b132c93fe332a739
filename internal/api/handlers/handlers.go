package handlers

import (
	"github.com/rendi001-code/projekrela/internal/models"
	"github.com/rendi001-code/projekrela/internal/relay"
	"github.com/rendi001-code/projekrela/internal/repositories"
)

// Handler carries the dependencies the route handlers share.
type Handler struct {
	Store   *repositories.Store
	Uploads repositories.UploadStore
	Relay   relay.Provider
}

func New(store *repositories.Store, uploads repositories.UploadStore, provider relay.Provider) *Handler {
	return &Handler{
		Store:   store,
		Uploads: uploads,
		Relay:   provider,
	}
}

// The chat endpoints have fixed response shapes the frontend depends on, so
// they use these structs instead of the utils.Payload envelope.

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type SendMessageResponse struct {
	Message    string         `json:"message"`
	NewMessage models.Message `json:"newMessage"`
}

type AskResponse struct {
	Response string `json:"response"`
}

type AskErrorResponse struct {
	Error string `json:"error"`
}
