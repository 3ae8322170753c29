package server

import "errors"

var (
	errNoHandler             = errors.New("no handler is given")
	errIncompleteCertificate = errors.New("cert and key files must be set together")
)
