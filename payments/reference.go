package payments

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewReferenceNumber generates a human-facing order reference of the form
// ORDER-XXXXXXXX (8 uppercase hex characters).
func NewReferenceNumber() string {
	id := uuid.New()
	return "ORDER-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
