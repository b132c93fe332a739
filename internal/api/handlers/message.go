package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rendi001-code/projekrela/internal/models"
	"github.com/rendi001-code/projekrela/internal/utils"
)

const maxUploadSize = 10 << 20 // 10 MB

// Attachment types allowed by the upload filter. Both the file extension and
// the declared content type must contain one of these tokens, matching the
// substring semantics of the previous deployment's filter.
var uploadTypeTokens = []string{"jpeg", "jpg", "png", "gif", "pdf", "doc", "docx"}

func matchesUploadToken(s string) bool {
	s = strings.ToLower(s)
	for _, token := range uploadTypeTokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// uploadFilename builds a collision-resistant name preserving the original
// extension: file-<unix-ms>-<random><ext>.
func uploadFilename(field, original string) string {
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), strings.ToLower(filepath.Ext(original)))
}

// SendMessage godoc
// @Summary Post a chat message
// @Description Stores a message with an optional attachment (jpeg, jpg, png, gif, pdf, doc, docx; max 10 MB)
// @Tags Messages
// @Accept multipart/form-data
// @Produce json
// @Param senderId formData string true "Sender identifier"
// @Param messageText formData string true "Message body"
// @Param file formData file false "Attachment"
// @Success 201 {object} handlers.SendMessageResponse
// @Failure 400 {object} handlers.MessageResponse
// @Router /send-message [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method not allowed"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid form"})
		return
	}

	senderID := r.FormValue("senderId")
	messageText := r.FormValue("messageText")

	if !utils.ValidInput(messageText) {
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid input"})
		return
	}

	var filePath *string
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()

		if header.Size > maxUploadSize {
			utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "File exceeds the 10 MB limit"})
			return
		}

		ext := filepath.Ext(header.Filename)
		contentType := header.Header.Get("Content-Type")
		if !matchesUploadToken(ext) || !matchesUploadToken(contentType) {
			utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Only image and document files are allowed!"})
			return
		}

		name := uploadFilename("file", header.Filename)
		path, saveErr := h.Uploads.Save(r.Context(), name, contentType, file)
		if saveErr != nil {
			utils.JSON(w, http.StatusInternalServerError, MessageResponse{Message: "Failed to store file"})
			return
		}
		filePath = &path

	case errors.Is(err, http.ErrMissingFile):
		// no attachment

	default:
		utils.JSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid form"})
		return
	}

	newMessage := models.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      messageText,
		File:      filePath,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	h.Store.AddMessage(newMessage)

	utils.JSON(w, http.StatusCreated, SendMessageResponse{
		Message:    "Message sent",
		NewMessage: newMessage,
	})
}

// GetMessages godoc
// @Summary List all messages
// @Description Returns the whole feed in insertion order
// @Tags Messages
// @Produce json
// @Success 200 {array} models.Message
// @Router /messages [get]
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method not allowed"})
		return
	}

	utils.JSON(w, http.StatusOK, h.Store.Messages())
}
