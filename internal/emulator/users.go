package emulator

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/MKhiriev/go-firebase-client/models"
)

// account is one registered user.
type account struct {
	LocalID       string
	Email         string
	PasswordHash  []byte
	EmailVerified bool
	CreatedAt     time.Time
	LastLoginAt   time.Time
}

// OobCode is an out-of-band code the emulator "sent" by email.
type OobCode struct {
	Email       string `json:"email"`
	OobCode     string `json:"oobCode"`
	OobLink     string `json:"oobLink"`
	RequestType string `json:"requestType"`
}

// userStore holds accounts, refresh tokens and sent codes.
type userStore struct {
	mu sync.Mutex

	ids  *utils.UUIDGenerator
	now  func() time.Time
	cost int

	byID     map[string]*account
	byEmail  map[string]string
	refresh  map[string]string
	oobCodes []OobCode
}

func newUserStore(ids *utils.UUIDGenerator, now func() time.Time) *userStore {
	return &userStore{
		ids:     ids,
		now:     now,
		cost:    bcrypt.DefaultCost,
		byID:    make(map[string]*account),
		byEmail: make(map[string]string),
		refresh: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// create registers a new account with a bcrypt password hash.
func (s *userStore) create(email, password string) (account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return account{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(email)
	if _, ok := s.byEmail[key]; ok {
		return account{}, errEmailExists
	}

	now := s.now()
	acc := &account{
		LocalID:      s.ids.Compact(28),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		LastLoginAt:  now,
	}
	s.byID[acc.LocalID] = acc
	s.byEmail[key] = acc.LocalID
	return *acc, nil
}

// authenticate checks the password and records the login.
func (s *userStore) authenticate(email, password string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return account{}, errUserNotFound
	}
	acc := s.byID[id]
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) != nil {
		return account{}, errInvalidPassword
	}
	acc.LastLoginAt = s.now()
	return *acc, nil
}

func (s *userStore) get(localID string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[localID]
	if !ok {
		return account{}, errUserNotFound
	}
	return *acc, nil
}

func (s *userStore) getByEmail(email string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return account{}, errUserNotFound
	}
	return *s.byID[id], nil
}

// delete removes the account together with its refresh tokens.
func (s *userStore) delete(localID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[localID]
	if !ok {
		return errUserNotFound
	}
	delete(s.byID, localID)
	delete(s.byEmail, normalizeEmail(acc.Email))
	for token, id := range s.refresh {
		if id == localID {
			delete(s.refresh, token)
		}
	}
	return nil
}

// issueRefreshToken returns a new opaque refresh token for localID.
func (s *userStore) issueRefreshToken(localID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.ids.Compact(64)
	s.refresh[token] = localID
	return token
}

// resolveRefreshToken returns the account a refresh token was issued to.
func (s *userStore) resolveRefreshToken(token string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.refresh[token]
	if !ok {
		return account{}, errUnknownRefresh
	}
	acc, ok := s.byID[id]
	if !ok {
		return account{}, errUserNotFound
	}
	return *acc, nil
}

// addOobCode records a sent code and returns it.
func (s *userStore) addOobCode(email, requestType, host string) OobCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.ids.Compact(32)
	oob := OobCode{
		Email:       email,
		OobCode:     code,
		OobLink:     fmt.Sprintf("https://%s/emulator/action?mode=%s&oobCode=%s", host, modeFor(requestType), code),
		RequestType: requestType,
	}
	s.oobCodes = append(s.oobCodes, oob)
	return oob
}

func modeFor(requestType string) string {
	if requestType == models.RequestTypePasswordReset {
		return "resetPassword"
	}
	return "verifyEmail"
}

// consumeOobCode removes a code of the given type and returns the account it
// was sent to.
func (s *userStore) consumeOobCode(code, requestType string) (*account, error) {
	for i, oob := range s.oobCodes {
		if oob.OobCode != code || oob.RequestType != requestType {
			continue
		}
		id, ok := s.byEmail[normalizeEmail(oob.Email)]
		if !ok {
			return nil, errUserNotFound
		}
		s.oobCodes = append(s.oobCodes[:i], s.oobCodes[i+1:]...)
		return s.byID[id], nil
	}
	return nil, errUnknownOobCode
}

// confirmEmail marks the email of the code's account verified.
func (s *userStore) confirmEmail(code string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.consumeOobCode(code, models.RequestTypeVerifyEmail)
	if err != nil {
		return account{}, err
	}
	acc.EmailVerified = true
	return *acc, nil
}

// resetPassword replaces the password of the code's account.
func (s *userStore) resetPassword(code, newPassword string) (account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return account{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.consumeOobCode(code, models.RequestTypePasswordReset)
	if err != nil {
		return account{}, err
	}
	acc.PasswordHash = hash
	return *acc, nil
}

// sentCodes returns the recorded codes ordered by email.
func (s *userStore) sentCodes() []OobCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]OobCode, len(s.oobCodes))
	copy(codes, s.oobCodes)
	sort.SliceStable(codes, func(i, j int) bool { return codes[i].Email < codes[j].Email })
	return codes
}
