package emulator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
	"github.com/MKhiriev/go-firebase-client/models"
)

type signUpResponse struct {
	Kind         string `json:"kind"`
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

type signInResponse struct {
	Kind         string `json:"kind"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	Registered   bool   `json:"registered"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type oobCodeResponse struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
}

type userInfo struct {
	LocalID           string `json:"localId"`
	Email             string `json:"email"`
	EmailVerified     bool   `json:"emailVerified"`
	PasswordUpdatedAt int64  `json:"passwordUpdatedAt"`
	CreatedAt         string `json:"createdAt"`
	LastLoginAt       string `json:"lastLoginAt"`
}

type lookupResponse struct {
	Kind  string     `json:"kind"`
	Users []userInfo `json:"users"`
}

type updateResponse struct {
	Kind          string `json:"kind"`
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}

type resetPasswordRequest struct {
	OobCode     string `json:"oobCode"`
	NewPassword string `json:"newPassword"`
}

type resetPasswordResponse struct {
	Kind        string `json:"kind"`
	Email       string `json:"email"`
	RequestType string `json:"requestType"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    string `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	UserID       string `json:"user_id"`
	ProjectID    string `json:"project_id"`
}

const kindPrefix = "identitytoolkit#"

// decode reads a JSON request body or answers INVALID_JSON.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidJSON)
		return false
	}
	return true
}

func (h *Handler) expiresIn() string {
	return strconv.Itoa(int(h.cfg.TokenDuration / time.Second))
}

func (h *Handler) issueIDToken(acc account) (string, error) {
	return utils.GenerateIDToken(TokenIssuer, acc.LocalID, acc.Email, acc.EmailVerified, h.cfg.TokenDuration, h.cfg.TokenSignKey)
}

// accountFromToken resolves an identity token to its account, answering
// INVALID_ID_TOKEN or USER_NOT_FOUND on failure.
func (h *Handler) accountFromToken(w http.ResponseWriter, r *http.Request, idToken string) (account, bool) {
	log := logger.FromRequest(r)

	localID, err := utils.ValidateIDToken(idToken, h.cfg.TokenSignKey, TokenIssuer)
	if err != nil {
		log.Err(err).Msg("invalid identity token")
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidIDToken)
		return account{}, false
	}

	acc, err := h.users.get(localID)
	if err != nil {
		log.Err(err).Str("local_id", localID).Msg("token for a deleted account")
		writeAuthError(w, r, http.StatusBadRequest, MsgUserNotFound)
		return account{}, false
	}
	return acc, true
}

// credentialsValid answers INVALID_EMAIL or WEAK_PASSWORD.
func (h *Handler) credentialsValid(w http.ResponseWriter, r *http.Request, req models.PasswordRequest) bool {
	err := h.validator.Validate(r.Context(), req)
	switch {
	case err == nil:
		return true
	case errors.Is(err, validators.ErrWeakPassword):
		writeAuthError(w, r, http.StatusBadRequest, MsgWeakPassword)
	default:
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidEmail)
	}
	logger.FromRequest(r).Err(err).Msg("invalid credentials")
	return false
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordRequest
	if !decode(w, r, &req) || !h.credentialsValid(w, r, req) {
		return
	}

	acc, err := h.users.create(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errEmailExists) {
			writeAuthError(w, r, http.StatusBadRequest, MsgEmailExists)
			return
		}
		log.Err(err).Msg("unexpected error occurred during sign-up")
		writeAuthError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	idToken, err := h.issueIDToken(acc)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeAuthError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Str("local_id", acc.LocalID).Msg("account created")
	writeAuth(w, r, signUpResponse{
		Kind:         kindPrefix + "SignupNewUserResponse",
		IDToken:      idToken,
		Email:        acc.Email,
		RefreshToken: h.users.issueRefreshToken(acc.LocalID),
		ExpiresIn:    h.expiresIn(),
		LocalID:      acc.LocalID,
	})
}

func (h *Handler) signInWithPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validators.ValidateEmail(req.Email); err != nil {
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidEmail)
		return
	}

	acc, err := h.users.authenticate(req.Email, req.Password)
	switch {
	case errors.Is(err, errUserNotFound):
		writeAuthError(w, r, http.StatusBadRequest, MsgEmailNotFound)
		return
	case errors.Is(err, errInvalidPassword):
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidPassword)
		return
	}

	idToken, err := h.issueIDToken(acc)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeAuthError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Str("local_id", acc.LocalID).Msg("user successfully signed in")
	writeAuth(w, r, signInResponse{
		Kind:         kindPrefix + "VerifyPasswordResponse",
		LocalID:      acc.LocalID,
		Email:        acc.Email,
		IDToken:      idToken,
		Registered:   true,
		RefreshToken: h.users.issueRefreshToken(acc.LocalID),
		ExpiresIn:    h.expiresIn(),
	})
}

func (h *Handler) sendOobCode(w http.ResponseWriter, r *http.Request) {
	var req models.OobCodeRequest
	if !decode(w, r, &req) {
		return
	}

	var email string
	switch req.RequestType {
	case models.RequestTypePasswordReset:
		acc, err := h.users.getByEmail(req.Email)
		if err != nil {
			writeAuthError(w, r, http.StatusBadRequest, MsgEmailNotFound)
			return
		}
		email = acc.Email
	case models.RequestTypeVerifyEmail:
		acc, ok := h.accountFromToken(w, r, req.IDToken)
		if !ok {
			return
		}
		email = acc.Email
	default:
		writeAuthError(w, r, http.StatusBadRequest, MsgMissingRequestType)
		return
	}

	oob := h.users.addOobCode(email, req.RequestType, r.Host)
	logger.FromRequest(r).Info().
		Str("email", email).
		Str("request_type", oob.RequestType).
		Str("oob_link", oob.OobLink).
		Msg("out-of-band code sent")

	writeAuth(w, r, oobCodeResponse{Kind: kindPrefix + "GetOobConfirmationCodeResponse", Email: email})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	var req models.IDTokenRequest
	if !decode(w, r, &req) {
		return
	}

	acc, ok := h.accountFromToken(w, r, req.IDToken)
	if !ok {
		return
	}

	writeAuth(w, r, lookupResponse{
		Kind: kindPrefix + "GetAccountInfoResponse",
		Users: []userInfo{{
			LocalID:           acc.LocalID,
			Email:             acc.Email,
			EmailVerified:     acc.EmailVerified,
			PasswordUpdatedAt: acc.CreatedAt.UnixMilli(),
			CreatedAt:         strconv.FormatInt(acc.CreatedAt.UnixMilli(), 10),
			LastLoginAt:       strconv.FormatInt(acc.LastLoginAt.UnixMilli(), 10),
		}},
	})
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	var req models.IDTokenRequest
	if !decode(w, r, &req) {
		return
	}

	acc, ok := h.accountFromToken(w, r, req.IDToken)
	if !ok {
		return
	}

	if err := h.users.delete(acc.LocalID); err != nil {
		writeAuthError(w, r, http.StatusBadRequest, MsgUserNotFound)
		return
	}

	logger.FromRequest(r).Debug().Str("local_id", acc.LocalID).Msg("account deleted")
	writeAuth(w, r, map[string]string{"kind": kindPrefix + "DeleteAccountResponse"})
}

// updateAccount confirms an email address with a VERIFY_EMAIL code.
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmEmailRequest
	if !decode(w, r, &req) {
		return
	}
	if req.OobCode == "" {
		writeAuthError(w, r, http.StatusBadRequest, MsgMissingOobCode)
		return
	}

	acc, err := h.users.confirmEmail(req.OobCode)
	if err != nil {
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidOobCode)
		return
	}

	writeAuth(w, r, updateResponse{
		Kind:          kindPrefix + "SetAccountInfoResponse",
		LocalID:       acc.LocalID,
		Email:         acc.Email,
		EmailVerified: acc.EmailVerified,
	})
}

// resetPassword applies a PASSWORD_RESET code.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if req.OobCode == "" {
		writeAuthError(w, r, http.StatusBadRequest, MsgMissingOobCode)
		return
	}
	if err := validators.ValidatePassword(req.NewPassword); err != nil {
		writeAuthError(w, r, http.StatusBadRequest, MsgWeakPassword)
		return
	}

	acc, err := h.users.resetPassword(req.OobCode, req.NewPassword)
	if err != nil {
		writeAuthError(w, r, http.StatusBadRequest, MsgInvalidOobCode)
		return
	}

	writeAuth(w, r, resetPasswordResponse{
		Kind:        kindPrefix + "ResetPasswordResponse",
		Email:       acc.Email,
		RequestType: models.RequestTypePasswordReset,
	})
}

// token exchanges a refresh token. Responses carry a Content-Length.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		writeTokenError(w, r, http.StatusBadRequest, MsgInvalidGrantType)
		return
	}
	if r.PostForm.Get("grant_type") != models.GrantTypeRefreshToken {
		writeTokenError(w, r, http.StatusBadRequest, MsgInvalidGrantType)
		return
	}
	refreshToken := r.PostForm.Get("refresh_token")
	if refreshToken == "" {
		writeTokenError(w, r, http.StatusBadRequest, MsgMissingRefreshToken)
		return
	}

	acc, err := h.users.resolveRefreshToken(refreshToken)
	if err != nil {
		log.Err(err).Msg("refresh rejected")
		writeTokenError(w, r, http.StatusBadRequest, MsgInvalidRefreshToken)
		return
	}

	idToken, err := h.issueIDToken(acc)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeTokenError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if _, err = utils.WriteJSON(w, tokenResponse{
		AccessToken:  idToken,
		ExpiresIn:    h.expiresIn(),
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		IDToken:      idToken,
		UserID:       acc.LocalID,
		ProjectID:    "emulator",
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) listOobCodes(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string][]OobCode{"oobCodes": h.users.sentCodes()}, http.StatusOK)
}
