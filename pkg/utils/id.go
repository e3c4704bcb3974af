package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a 32-char hex id for primary keys (varchar(32) columns).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
