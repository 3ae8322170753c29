package emulator

import "errors"

// Identity toolkit error messages returned to clients.
const (
	MsgAPIKeyInvalid       = "API key not valid. Please pass a valid API key."
	MsgInvalidJSON         = "INVALID_JSON"
	MsgInvalidEmail        = "INVALID_EMAIL"
	MsgWeakPassword        = "WEAK_PASSWORD : Password should be at least 6 characters"
	MsgEmailExists         = "EMAIL_EXISTS"
	MsgEmailNotFound       = "EMAIL_NOT_FOUND"
	MsgInvalidPassword     = "INVALID_PASSWORD"
	MsgInvalidIDToken      = "INVALID_ID_TOKEN"
	MsgUserNotFound        = "USER_NOT_FOUND"
	MsgMissingRequestType  = "MISSING_REQ_TYPE"
	MsgInvalidOobCode      = "INVALID_OOB_CODE"
	MsgMissingOobCode      = "MISSING_OOB_CODE"
	MsgInvalidGrantType    = "INVALID_GRANT_TYPE"
	MsgMissingRefreshToken = "MISSING_REFRESH_TOKEN"
	MsgInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
)

// Realtime database error messages.
const (
	MsgPermissionDenied = "Permission denied"
	MsgInvalidAuthToken = "Could not parse auth token."
	MsgInvalidData      = "Invalid data; couldn't parse JSON object, array, or value."
	MsgInvalidPath      = "Invalid path. Paths must be non-empty strings and can't contain \".\", \"#\", \"$\", \"[\", or \"]\""
	MsgNotFound         = "404 Not Found"
	MsgMethodNotAllowed = "Method not allowed"
)

var (
	errEmailExists      = errors.New("email already registered")
	errUserNotFound     = errors.New("user not found")
	errInvalidPassword  = errors.New("invalid password")
	errUnknownRefresh   = errors.New("unknown refresh token")
	errUnknownOobCode   = errors.New("unknown out-of-band code")
	errMergeNotAnObject = errors.New("update body must be a JSON object")
)
