package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

// charset omits 0/O/1/I so keys survive being read over the phone
const accessKeyCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var nonKeyChars = regexp.MustCompile(`[^A-Z0-9]`)

// GenerateAccessKeyCode returns a 12-character key formatted "XXXX-XXXX-XXXX".
// Uses crypto/rand with rand.Int to avoid modulo bias.
func GenerateAccessKeyCode() (string, error) {
	raw, err := randomFromCharset(12, accessKeyCharset)
	if err != nil {
		return "", err
	}
	return raw[:4] + "-" + raw[4:8] + "-" + raw[8:], nil
}

func randomFromCharset(n int, charset string) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[num.Int64()])
	}
	return sb.String(), nil
}

// NormalizeAccessKeyCode upper-cases, strips separators, and re-applies the
// canonical XXXX-XXXX-XXXX formatting. Returns "" for input that cannot be a
// key.
func NormalizeAccessKeyCode(code string) string {
	s := strings.ToUpper(strings.TrimSpace(code))
	s = nonKeyChars.ReplaceAllString(s, "")
	if len(s) != 12 {
		return ""
	}
	return s[:4] + "-" + s[4:8] + "-" + s[8:]
}

// IsValidAccessKeyFormat accepts "XXXXXXXXXXXX" or "XXXX-XXXX-XXXX".
func IsValidAccessKeyFormat(code string) bool {
	c := strings.TrimSpace(code)
	if c == "" {
		return false
	}
	match1, _ := regexp.MatchString(`^[A-Za-z0-9]{12}$`, c)
	match2, _ := regexp.MatchString(`^[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}$`, c)
	return match1 || match2
}

// MaskEmail returns a masked email for safe display in admin listings.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	domain := parts[1]

	maskedLocal := local
	if len(local) > 2 {
		maskedLocal = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		maskedLocal = local[:1] + "*"
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) >= 2 {
		if len(domainParts[0]) > 1 {
			domainParts[0] = domainParts[0][:1] + strings.Repeat("*", len(domainParts[0])-1)
		}
	}

	return maskedLocal + "@" + strings.Join(domainParts, ".")
}
