package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReferenceNumber builds a human-presentable unique identifier such
// as TXN1717171717000A1B2C3: prefix, millisecond timestamp, 6-char
// random suffix. Collisions are treated as negligible and not retried.
func NewReferenceNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), suffix)
}
