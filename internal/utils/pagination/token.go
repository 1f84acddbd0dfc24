package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Tokens travel in query strings, so the URL-safe alphabet is used.
var encoding = base64.RawURLEncoding

// EncodeKeysetToken creates an opaque token for (value, id) keyset pagination.
// The id goes first so the value may contain the separator.
func EncodeKeysetToken(value string, id int64) string {
	return EncodeMultiFieldToken(strconv.FormatInt(id, 10), value)
}

// DecodeKeysetToken parses a token created by EncodeKeysetToken.
func DecodeKeysetToken(token string) (string, int64, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return "", 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid pagination token format (split)")
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid pagination token format (id parse): %q", parts[0])
	}
	return parts[1], id, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return encoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
