package utils

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
)

// SPKIFingerprint returns the base64-encoded SHA-256 digest of the
// certificate's DER-encoded SubjectPublicKeyInfo.
//
// The value is stable across certificate renewals that keep the same key
// pair, which makes it suitable for public key pinning.
//
// Example usage:
//
//	pin := "sha256/" + utils.SPKIFingerprint(leaf)
func SPKIFingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.RawSubjectPublicKeyInfo)
	return base64.StdEncoding.EncodeToString(sum[:])
}
