package model

import "github.com/google/uuid"

// ID prefixes. User ids look like GH7K2Q9A, appointment ids like CONS-X81B2M
// or SRV-4QZ07N.
const (
	UserIDPrefix         = "GH"
	ConsultationIDPrefix = "CONS-"
	ServiceIDPrefix      = "SRV-"
)

const idSuffixLen = 6

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewID returns prefix plus a random uppercase alphanumeric suffix. Ids are
// assumed unique, never checked; the suffix space makes collisions unlikely,
// not impossible.
func NewID(prefix string) string {
	u := uuid.New()
	b := make([]byte, idSuffixLen)
	for i := range b {
		b[i] = idAlphabet[int(u[i])%len(idAlphabet)]
	}
	return prefix + string(b)
}
