package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/helpers"
	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// sessionExpiry is how long an admin session token stays valid.
const sessionExpiry = 12 * time.Hour

// LoginRequest carries the externally-authenticated identity presented at
// login. Authentication itself (password, OAuth) is the identity provider's
// concern; this endpoint only decides admission.
type LoginRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// LoginResponse is the success payload for POST /auth/login.
type LoginResponse struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// LoginSuccessResponse is the success envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger *slog.Logger
	Access domain.AccessService
	Tokens domain.TokenIssuer
}

func NewAuthController(logger *slog.Logger, access domain.AccessService, tokens domain.TokenIssuer) *AuthController {
	return &AuthController{
		Logger: logger,
		Access: access,
		Tokens: tokens,
	}
}

// Login godoc
// @Summary Log in to the admin panel
// @Description Checks the presented identity's email against the allow-list document and issues a session token when permitted. The allow-list is fetched fresh for every attempt.
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body LoginRequest true "Authenticated identity"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity := &domain.Identity{ID: req.ID, Email: req.Email, Name: req.Name}

	allowed, err := c.Access.Authorize(r.Context(), identity)
	if err != nil {
		// The allow-list could not be read. Deny; the client may retry.
		c.Logger.ErrorContext(r.Context(), "login check failed", "email", identity.Email, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, "could not verify access, try again")
		return
	}
	if !allowed {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not permitted to use the admin panel")
		return
	}

	token, err := c.Tokens.Issue(identity, sessionExpiry)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "token issue failed", "email", identity.Email, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not create session")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, Identity: identity})
}
