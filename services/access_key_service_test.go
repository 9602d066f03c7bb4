package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessKey(t *testing.T) {
	s := newTestServices(t)

	// SMTP is unset in tests, so the email leg is the logged mock send
	key, err := s.Keys.Generate(GenerateAccessKeyInput{
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`, key.AccessKey)
	assert.False(t, key.IsUsed)
	assert.NotContainsf(t, key.AccessKey, "0", "ambiguous characters are excluded")
}

func TestGenerateAccessKeyValidation(t *testing.T) {
	s := newTestServices(t)

	_, err := s.Keys.Generate(GenerateAccessKeyInput{CustomerEmail: "grace@example.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customerName", verr.Field)

	_, err = s.Keys.Generate(GenerateAccessKeyInput{CustomerName: "Grace Hopper"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customerEmail", verr.Field)
}

func TestRedeemAccessKey(t *testing.T) {
	s := newTestServices(t)

	key, err := s.Keys.Generate(GenerateAccessKeyInput{
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
	})
	require.NoError(t, err)

	// sloppy input normalizes to the canonical form
	sloppy := "  " + strings.ToLower(strings.ReplaceAll(key.AccessKey, "-", " ")) + " "
	redeemed, err := s.Keys.Redeem(sloppy)
	require.NoError(t, err)
	assert.True(t, redeemed.IsUsed)
	require.NotNil(t, redeemed.UsedAt)

	t.Run("second redemption is rejected", func(t *testing.T) {
		_, err := s.Keys.Redeem(key.AccessKey)
		var cerr *ConflictError
		require.ErrorAs(t, err, &cerr)
	})
}

func TestRedeemUnknownKey(t *testing.T) {
	s := newTestServices(t)

	_, err := s.Keys.Redeem("ZZZZ-ZZZZ-ZZZZ")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)

	_, err = s.Keys.Redeem("nonsense")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteAccessKey(t *testing.T) {
	s := newTestServices(t)

	key, err := s.Keys.Generate(GenerateAccessKeyInput{
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, s.Keys.Delete(key.ID))

	err = s.Keys.Delete(key.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}
