package auth

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/storygen/backend/internal/database"
	"github.com/storygen/backend/internal/models"
)

// Handler serves registration and login. Passwords are stored and compared
// as plaintext to stay row-compatible with the existing user base; there is
// no token or session model. Hardening either is out of scope here and must
// come with a migration plan.
type Handler struct {
	db *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.Username == "" || req.Password == "" || req.Mobile == "" || req.Gmail == "" {
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Message: "Missing fields"})
		return
	}

	// Duplicate check matches on the username AND password pair.
	var existingID int64
	err := h.db.QueryRow(
		`SELECT id FROM users WHERE username = $1 AND password = $2`,
		req.Username, req.Password,
	).Scan(&existingID)
	if err == nil {
		writeJSON(w, http.StatusConflict, models.SuccessResponse{Success: false, Message: "User already registered"})
		return
	}
	if err != sql.ErrNoRows {
		log.Printf("Register: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.SuccessResponse{Success: false, Message: "Internal server error"})
		return
	}

	_, err = h.db.Exec(
		`INSERT INTO users (username, password, mobile, gmail, registered_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		req.Username, req.Password, req.Mobile, req.Gmail, database.NowStamp(),
	)
	if err != nil {
		log.Printf("Register: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.SuccessResponse{Success: false, Message: "Failed to create account"})
		return
	}

	writeJSON(w, http.StatusCreated, models.SuccessResponse{Success: true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.DeviceType == "" {
		req.DeviceType = "web"
	}

	var userID int64
	err := h.db.QueryRow(
		`SELECT id FROM users WHERE username = $1 AND password = $2`,
		req.Username, req.Password,
	).Scan(&userID)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusUnauthorized, models.SuccessResponse{Success: false})
		return
	}
	if err != nil {
		log.Printf("Login: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.SuccessResponse{Success: false, Message: "Internal server error"})
		return
	}

	// Every successful login is logged, one row per attempt.
	_, err = h.db.Exec(
		`INSERT INTO login_logs (login_id, created_at, user_id, username, password, device_type)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), database.NowStamp(), userID, req.Username, req.Password, req.DeviceType,
	)
	if err != nil {
		log.Printf("Login: failed to write login log for user %d: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
