// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the credentials of the signed-in user.
//
// A [Session] performs no I/O. It is replaced as a whole after sign-up or
// sign-in, and partially (identity token and user id) after a token refresh.
// An empty identity token means "not authenticated".
package session

import (
	"errors"
	"sync"
)

// ErrIncompleteCredentials is returned by [Session.Adopt] and
// [Session.AdoptRefreshed] when a required field is empty.
var ErrIncompleteCredentials = errors.New("incomplete credentials")

// Credentials is the triple obtained at sign-in.
type Credentials struct {
	IDToken      string `json:"id_token"`
	UserID       string `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
}

// Complete reports whether every field is set.
func (c Credentials) Complete() bool {
	return c.IDToken != "" && c.UserID != "" && c.RefreshToken != ""
}

// Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	creds Credentials
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Adopt replaces the whole triple. The session is left untouched when any
// field of c is empty.
func (s *Session) Adopt(c Credentials) error {
	if !c.Complete() {
		return ErrIncompleteCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = c
	return nil
}

// AdoptRefreshed replaces the identity token and user id and keeps the
// refresh token.
func (s *Session) AdoptRefreshed(idToken, userID string) error {
	if idToken == "" || userID == "" {
		return ErrIncompleteCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.IDToken = idToken
	s.creds.UserID = userID
	return nil
}

// Clear forgets all credentials.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
}

func (s *Session) IDToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.IDToken
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.UserID
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.RefreshToken
}

// Credentials returns a copy of the current triple.
func (s *Session) Credentials() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Authenticated reports whether an identity token is held.
func (s *Session) Authenticated() bool {
	return s.IDToken() != ""
}
