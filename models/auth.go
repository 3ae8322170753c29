package models

// Request types for the identity endpoints. Field names follow the Firebase
// REST API.

// PasswordRequest is the body of accounts:signUp and
// accounts:signInWithPassword.
type PasswordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// OobCodeRequest is the body of accounts:sendOobCode. Exactly one of Email
// (PASSWORD_RESET) or IDToken (VERIFY_EMAIL) is set.
type OobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email,omitempty"`
	IDToken     string `json:"idToken,omitempty"`
}

// Out-of-band request types.
const (
	RequestTypePasswordReset = "PASSWORD_RESET"
	RequestTypeVerifyEmail   = "VERIFY_EMAIL"
)

// IDTokenRequest is the body of accounts:lookup and accounts:delete.
type IDTokenRequest struct {
	IDToken string `json:"idToken"`
}

// ConfirmEmailRequest is the body of accounts:update when confirming an
// email with an out-of-band code.
type ConfirmEmailRequest struct {
	OobCode string `json:"oobCode"`
}

// Response field names the client extracts.
const (
	FieldIDToken       = "idToken"
	FieldLocalID       = "localId"
	FieldRefreshToken  = "refreshToken"
	FieldEmail         = "email"
	FieldEmailVerified = "emailVerified"
	FieldUsers         = "users"
	FieldError         = "error"
	FieldMessage       = "message"

	// Secure token service responses use snake case.
	FieldRefreshedIDToken = "id_token"
	FieldRefreshedUserID  = "user_id"
)

// Grant type sent to the secure token service.
const GrantTypeRefreshToken = "refresh_token"
