package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 32-char hex id suitable for varchar(32) primary keys.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidID reports whether id looks like an id produced by NewID or a plain UUID.
func ValidID(id string) bool {
	if len(id) == 32 {
		id = id[:8] + "-" + id[8:12] + "-" + id[12:16] + "-" + id[16:20] + "-" + id[20:]
	}
	_, err := uuid.Parse(id)
	return err == nil
}
