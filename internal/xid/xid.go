package xid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New builds a timestamped identifier such as a generated product
// barcode (e.g. "PROD-1756400000000-a1b2c3d4").
func New(prefix string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(buf))
}
