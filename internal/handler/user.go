package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/auth"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/httputils"
	"github.com/GurshaanDaula/Assignment2-Database/internal/service"

	"github.com/gorilla/mux"
)

const maxAvatarSize = 10 << 20 // 10MB

// Сообщения форм, как их видит пользователь
const (
	msgUserNotFound  = "User not found"
	msgWrongPassword = "Incorrect password"
	msgEmailTaken    = "Email already in use"
	msgWeakPassword  = "Password must be at least 10 characters long and include an uppercase letter, a lowercase letter, a number, and a special character."
)

type UserHandler struct {
	userService    service.UserService
	sessionService service.SessionService
	avatarService  *service.AvatarService
	signer         *auth.CookieSigner
}

func NewUserHandler(userService service.UserService, sessionService service.SessionService, avatarService *service.AvatarService, signer *auth.CookieSigner) *UserHandler {
	return &UserHandler{
		userService:    userService,
		sessionService: sessionService,
		avatarService:  avatarService,
		signer:         signer,
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/login", h.loginPage).Methods("GET")
	router.HandleFunc("/login", h.login).Methods("POST", "OPTIONS")
	router.HandleFunc("/signup", h.signupPage).Methods("GET")
	router.HandleFunc("/signup", h.signup).Methods("POST", "OPTIONS")
	router.HandleFunc("/logout", h.logout).Methods("GET")
	router.HandleFunc("/user/avatar", h.uploadAvatar).Methods("POST", "OPTIONS")
	router.HandleFunc("/user/{id}", h.getUser).Methods("GET", "OPTIONS")
}

type formPage struct {
	Error string
}

func (h *UserHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentSession(r, h.signer, h.sessionService); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	render(w, "login.html", formPage{})
}

// @Summary Login
// @Description Log into an account, establishes a session
// @ID login
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to home"
// @Failure 500 {object} response.ErrorResponse
// @Router /login [post]
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userService.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			render(w, "login.html", formPage{Error: msgUserNotFound})
		case errors.Is(err, service.ErrWrongPassword):
			render(w, "login.html", formPage{Error: msgWrongPassword})
		default:
			httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	sessionID, err := h.sessionService.Create(user.ID, user.Username)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.signer.SetSessionCookie(w, sessionID, service.SessionTTL)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *UserHandler) signupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentSession(r, h.signer, h.sessionService); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	render(w, "signup.html", formPage{})
}

// @Summary Sign up
// @Description Register an account
// @ID signup
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Redirect to login"
// @Failure 500 {object} response.ErrorResponse
// @Router /signup [post]
func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := r.FormValue("email")
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := h.userService.Register(email, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			render(w, "signup.html", formPage{Error: msgWeakPassword})
		case errors.Is(err, service.ErrEmailTaken):
			render(w, "signup.html", formPage{Error: msgEmailTaken})
		default:
			httputils.ResponseError(w, http.StatusInternalServerError, "Database error during signup")
		}
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// @Summary Logout
// @Description Invalidate the current session
// @ID logout
// @Success 302 "Redirect to login"
// @Router /logout [get]
func (h *UserHandler) logout(w http.ResponseWriter, r *http.Request) {
	if id, err := h.signer.SessionID(r); err == nil {
		if err := h.sessionService.Destroy(id); err != nil {
			httputils.ResponseError(w, http.StatusInternalServerError, "Could not log out")
			return
		}
	}

	h.signer.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// @Summary Get user
// @Description Get public user profile by id
// @ID get-user
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 404 {object} response.ErrorResponse
// @Param id path int true "User ID"
// @Router /user/{id} [get]
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse user ID")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		httputils.ResponseError(w, http.StatusNotFound, "No such user")
		return
	}

	resp := UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}

	if h.avatarService != nil && user.ProfilePictureKey != "" {
		url, err := h.avatarService.PresignAvatarURL(r.Context(), user.ProfilePictureKey, 15*time.Minute)
		if err == nil {
			resp.AvatarURL = url
		}
	}

	httputils.ResponseJSON(w, http.StatusOK, resp)
}

// @Summary Upload avatar
// @Description Upload a profile picture for the logged in user
// @ID upload-avatar
// @Accept mpfd
// @Success 302 "Redirect to home"
// @Failure 403 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Param avatar formData file true "Avatar image"
// @Router /user/avatar [post]
func (h *UserHandler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.signer, h.sessionService, "You need to be logged in to upload an avatar")
	if !ok {
		return
	}

	if h.avatarService == nil {
		httputils.ResponseError(w, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, err := h.avatarService.UploadAvatar(r.Context(), file, header.Filename, contentType, session.UserID); err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
