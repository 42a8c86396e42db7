package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	ReceiptPrefix     = "REC-"
	receiptCodeDigits = 8
)

// NewReceiptCode returns a short human-readable receipt id whose last digit is a Luhn check digit.
func NewReceiptCode() string {
	return ReceiptPrefix + goluhn.Generate(receiptCodeDigits)
}

func IsReceiptCode(s string) bool {
	digits, ok := strings.CutPrefix(s, ReceiptPrefix)
	if !ok || len(digits) != receiptCodeDigits {
		return false
	}
	return IsLuna(digits)
}
