package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rendi001-code/projekrela/internal/utils"
)

type askRequest struct {
	Prompt string `json:"prompt"`
}

// AskRelaAI godoc
// @Summary Ask Rela AI
// @Description Forwards a prompt to the completion provider and returns its first completion
// @Tags AI
// @Accept json
// @Produce json
// @Param body body handlers.askRequest true "Prompt"
// @Success 200 {object} handlers.AskResponse
// @Failure 400 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.AskErrorResponse
// @Router /ask-rela-ai [post]
func (h *Handler) AskRelaAI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method not allowed"})
		return
	}

	var input askRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	if !utils.ValidInput(input.Prompt) {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	text, err := h.Relay.Complete(r.Context(), input.Prompt)
	if err != nil {
		log.Printf("Error calling completion provider: %v", err)
		utils.JSON(w, http.StatusInternalServerError, AskErrorResponse{Error: "Failed to get response from Rela AI"})
		return
	}

	utils.JSON(w, http.StatusOK, AskResponse{Response: text})
}
