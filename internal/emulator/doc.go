// Package emulator implements a local stand-in for the Firebase identity
// toolkit, the secure token service and the realtime database.
//
// The emulator keeps all state in memory. Identity toolkit responses are
// flushed in pieces so that they travel with chunked transfer encoding,
// while token and database responses declare a Content-Length. Both framings
// of the client engine are exercised this way.
//
// Error bodies follow Firebase: the identity endpoints answer
//
//	{"error":{"code":400,"message":"EMAIL_EXISTS","errors":[...]}}
//
// and the database answers {"error":"Permission denied"}.
package emulator
