package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeKeysetToken(t *testing.T) {
	// Values may contain the separator and non-ASCII text
	for _, value := range []string{"Ashwin", "Travel | Meals", "Ünïcode", ""} {
		token := EncodeKeysetToken(value, 42)
		assert.NotEmpty(t, token, "Token should not be empty")
		assert.NotContains(t, token, "+", "Token should be URL safe")
		assert.NotContains(t, token, "/", "Token should be URL safe")

		decodedValue, decodedID, err := DecodeKeysetToken(token)
		assert.NoError(t, err, "Decoding should not return an error")
		assert.Equal(t, value, decodedValue)
		assert.Equal(t, int64(42), decodedID)
	}
}

func TestDecodeKeysetTokenError(t *testing.T) {
	_, _, err := DecodeKeysetToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeKeysetToken(EncodeMultiFieldToken("no-separator"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeKeysetToken(EncodeMultiFieldToken("abc", "Ashwin"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")

	_, _, err = DecodeKeysetToken(EncodeMultiFieldToken("0", "Ashwin"))
	assert.Error(t, err, "IDs start at 1")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("PROJECT", "Alpha", "7")
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"PROJECT", "Alpha", "7"}, fields)

	_, err = DecodeMultiFieldToken("%%%")
	assert.Error(t, err)
}
