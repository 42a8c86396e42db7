package validate

import (
	"github.com/google/uuid"
)

// IsUUID reports whether s can be used as a request or bid id.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
