package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-firebase-client/internal/extract"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/session"
	"github.com/MKhiriev/go-firebase-client/internal/store"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
	"github.com/MKhiriev/go-firebase-client/models"
)

// Operation names used in errors and logs.
const (
	opSignUp             = "signUp"
	opSignIn             = "signIn"
	opRefreshIDToken     = "refreshIdToken"
	opResetPassword      = "resetPassword"
	opVerifyEmail        = "verifyEmail"
	opCheckEmailVerified = "checkEmailVerified"
	opDeleteUser         = "deleteUser"
)

// Identity toolkit and secure token endpoints.
const (
	pathSignUp     = "/v1/accounts:signUp"
	pathSignIn     = "/v1/accounts:signInWithPassword"
	pathSendOob    = "/v1/accounts:sendOobCode"
	pathLookup     = "/v1/accounts:lookup"
	pathDelete     = "/v1/accounts:delete"
	pathTokenGrant = "/v1/token"
)

type authService struct {
	caller
	session   *session.Session
	sessions  store.SessionRepository
	validator validators.Validator
	now       func() time.Time
}

// NewAuthService builds the identity façade. sessions may be nil, in which
// case credentials live in memory only.
func NewAuthService(cfg ServerConfig, executor transport.Executor, sess *session.Session, sessions store.SessionRepository, log *logger.Logger) AuthService {
	if sess == nil {
		sess = session.New()
	}
	return &authService{
		caller:    caller{cfg: cfg, executor: executor, logger: log},
		session:   sess,
		sessions:  sessions,
		validator: validators.NewRequestValidator(),
		now:       time.Now,
	}
}

func (a *authService) SignUp(ctx context.Context, email, password string) error {
	return a.passwordAuth(ctx, opSignUp, pathSignUp, email, password, validators.FieldEmail, validators.FieldPassword)
}

// SignIn validates only the address. The password is judged by the server.
func (a *authService) SignIn(ctx context.Context, email, password string) error {
	return a.passwordAuth(ctx, opSignIn, pathSignIn, email, password, validators.FieldEmail)
}

func (a *authService) passwordAuth(ctx context.Context, op, path, email, password string, rules ...string) error {
	req := models.PasswordRequest{Email: email, Password: password, ReturnSecureToken: true}
	if err := a.validator.Validate(ctx, req, rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	resp, err := a.postJSON(ctx, op, a.cfg.IdentityHost(), a.withKey(path), req, transport.EncodingChunked)
	if err != nil {
		return err
	}

	fields, err := extract.LookupFields(resp.Body, models.FieldIDToken, models.FieldLocalID, models.FieldRefreshToken)
	if err != nil {
		return a.credentialsError(op, resp.Body, err)
	}

	return a.adopt(ctx, session.Credentials{
		IDToken:      fields[models.FieldIDToken],
		UserID:       fields[models.FieldLocalID],
		RefreshToken: fields[models.FieldRefreshToken],
	})
}

func (a *authService) RefreshIDToken(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		refreshToken = a.session.RefreshToken()
	}
	if refreshToken == "" {
		return ErrNotAuthenticated
	}

	form := url.Values{}
	form.Set("grant_type", models.GrantTypeRefreshToken)
	form.Set("refresh_token", refreshToken)

	resp, err := a.execute(ctx, opRefreshIDToken, &transport.Request{
		Method:      transport.MethodPost,
		Host:        a.cfg.TokenHost(),
		Target:      a.withKey(pathTokenGrant),
		ContentType: transport.ContentTypeForm,
		Body:        []byte(form.Encode()),
		Encoding:    transport.EncodingIdentity,
	})
	if err != nil {
		return err
	}

	fields, err := extract.LookupFields(resp.Body, models.FieldRefreshedIDToken, models.FieldRefreshedUserID)
	if err != nil {
		return a.credentialsError(opRefreshIDToken, resp.Body, err)
	}
	idToken, userID := fields[models.FieldRefreshedIDToken], fields[models.FieldRefreshedUserID]

	// A refresh without a prior sign-in starts a session from the argument.
	if a.session.RefreshToken() == "" {
		return a.adopt(ctx, session.Credentials{IDToken: idToken, UserID: userID, RefreshToken: refreshToken})
	}

	if err = a.session.AdoptRefreshed(idToken, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}
	return a.persist(ctx)
}

func (a *authService) ResetPassword(ctx context.Context, email string) error {
	req := models.OobCodeRequest{RequestType: models.RequestTypePasswordReset, Email: email}
	return a.sendOobCode(ctx, opResetPassword, req)
}

func (a *authService) VerifyEmail(ctx context.Context, idToken string) error {
	idToken, err := a.idToken(idToken)
	if err != nil {
		return err
	}
	req := models.OobCodeRequest{RequestType: models.RequestTypeVerifyEmail, IDToken: idToken}
	return a.sendOobCode(ctx, opVerifyEmail, req)
}

func (a *authService) sendOobCode(ctx context.Context, op string, req models.OobCodeRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	resp, err := a.postJSON(ctx, op, a.cfg.IdentityHost(), a.withKey(pathSendOob), req, transport.EncodingChunked)
	if err != nil {
		return err
	}

	if !a.detected(resp.Body, models.FieldEmail) {
		return a.fail(op, resp.Body)
	}
	return nil
}

func (a *authService) CheckEmailVerified(ctx context.Context, idToken string) (bool, error) {
	idToken, err := a.idToken(idToken)
	if err != nil {
		return false, err
	}

	resp, err := a.postJSON(ctx, opCheckEmailVerified, a.cfg.IdentityHost(), a.withKey(pathLookup),
		models.IDTokenRequest{IDToken: idToken}, transport.EncodingChunked)
	if err != nil {
		return false, err
	}

	if a.errorReported(resp.Body) {
		return false, a.fail(opCheckEmailVerified, resp.Body)
	}

	if a.cfg.TextualSuccess() {
		return extract.ContainsText(resp.Body, `"emailVerified":true`), nil
	}

	verified, err := extract.LookupPath(resp.Body, models.FieldUsers, "0", models.FieldEmailVerified)
	switch {
	case errors.Is(err, extract.ErrFieldMissing):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", opCheckEmailVerified, err)
	}
	return verified == "true", nil
}

func (a *authService) DeleteUser(ctx context.Context, idToken string) error {
	idToken, err := a.idToken(idToken)
	if err != nil {
		return err
	}

	resp, err := a.postJSON(ctx, opDeleteUser, a.cfg.IdentityHost(), a.withKey(pathDelete),
		models.IDTokenRequest{IDToken: idToken}, transport.EncodingChunked)
	if err != nil {
		return err
	}

	if !a.deleted(resp.Body) {
		return a.fail(opDeleteUser, resp.Body)
	}

	if idToken == a.session.IDToken() {
		return a.forget(ctx)
	}
	return nil
}

// deleted decides the outcome of accounts:delete. The structured check wants
// a JSON object without an error member.
func (a *authService) deleted(body []byte) bool {
	if a.cfg.TextualSuccess() {
		return extract.ContainsText(body, models.FieldIDToken)
	}
	_, err := extract.LookupField(body, models.FieldError)
	return errors.Is(err, extract.ErrFieldMissing)
}

func (a *authService) Restore(ctx context.Context) error {
	if a.sessions == nil {
		return store.ErrLocalSessionNotFound
	}

	creds, err := a.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if err = a.session.Adopt(creds); err != nil {
		return fmt.Errorf("stored session: %w", err)
	}

	a.logger.Debug().Str("user_id", creds.UserID).Msg("session restored")
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.forget(ctx)
}

func (a *authService) IDTokenExpiry() (time.Time, error) {
	if !a.session.Authenticated() {
		return time.Time{}, ErrNotAuthenticated
	}
	info, err := utils.ParseIDTokenClaims(a.session.IDToken())
	if err != nil {
		return time.Time{}, err
	}
	return info.ExpiresAt, nil
}

// EnsureFresh refreshes when the identity token expires within skew. A token
// whose claims cannot be read is refreshed as well.
func (a *authService) EnsureFresh(ctx context.Context, skew time.Duration) error {
	if !a.session.Authenticated() {
		return ErrNotAuthenticated
	}

	info, err := utils.ParseIDTokenClaims(a.session.IDToken())
	if err == nil && !info.Expired(a.now(), skew) {
		return nil
	}

	a.logger.Debug().Err(err).Time("expires_at", info.ExpiresAt).Msg("identity token is stale, refreshing")
	return a.RefreshIDToken(ctx, "")
}

func (a *authService) IDToken() string                  { return a.session.IDToken() }
func (a *authService) UserID() string                   { return a.session.UserID() }
func (a *authService) RefreshToken() string             { return a.session.RefreshToken() }
func (a *authService) Credentials() session.Credentials { return a.session.Credentials() }

// idToken falls back to the session's token for an empty argument.
func (a *authService) idToken(idToken string) (string, error) {
	if idToken == "" {
		idToken = a.session.IDToken()
	}
	if idToken == "" {
		return "", ErrNotAuthenticated
	}
	return idToken, nil
}

// credentialsError explains why the expected token fields could not be read.
func (a *authService) credentialsError(op string, body []byte, err error) error {
	if a.errorReported(body) {
		return a.fail(op, body)
	}
	a.logger.Warn().Err(err).Str("operation", op).Msg("response carries no credentials")
	return fmt.Errorf("%s: %w: %w", op, ErrMissingCredentials, err)
}

// adopt replaces the session and persists it. A persistence failure leaves
// the in-memory session adopted.
func (a *authService) adopt(ctx context.Context, creds session.Credentials) error {
	if err := a.session.Adopt(creds); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}
	return a.persist(ctx)
}

func (a *authService) persist(ctx context.Context) error {
	if a.sessions == nil {
		return nil
	}
	creds := a.session.Credentials()
	if err := a.sessions.Save(ctx, creds); err != nil {
		a.logger.Err(err).Str("user_id", creds.UserID).Msg("failed to persist session")
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (a *authService) forget(ctx context.Context) error {
	a.session.Clear()
	if a.sessions == nil {
		return nil
	}
	if err := a.sessions.Delete(ctx); err != nil {
		a.logger.Err(err).Msg("failed to delete persisted session")
		return fmt.Errorf("delete persisted session: %w", err)
	}
	return nil
}
