package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "7000000000:AAFakeTokenForTests"

// signInitData produces init data the way the Telegram client does.
func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	pairs := make([]string, 0, len(fields))
	for k, v := range fields {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func freshFields() map[string]string {
	return map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
		"query_id":  "AAH1234",
		"user":      `{"id":987654321,"first_name":"Anna","username":"anna_uz","language_code":"ru"}`,
	}
}

func TestValidator_AcceptsSignedData(t *testing.T) {
	v := NewValidator(testBotToken, time.Hour)

	user, err := v.Validate(signInitData(t, testBotToken, freshFields()))
	require.NoError(t, err)
	assert.Equal(t, int64(987654321), user.ID)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "ru", user.LanguageCode)
}

func TestValidator_RejectsWrongToken(t *testing.T) {
	v := NewValidator(testBotToken, time.Hour)

	_, err := v.Validate(signInitData(t, "1:other-bot-token", freshFields()))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidator_RejectsTamperedUser(t *testing.T) {
	v := NewValidator(testBotToken, time.Hour)

	raw := signInitData(t, testBotToken, freshFields())
	tampered := strings.Replace(raw, "987654321", "111111111", 1)

	_, err := v.Validate(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidator_RejectsStaleAuthDate(t *testing.T) {
	v := NewValidator(testBotToken, time.Hour)

	fields := freshFields()
	fields["auth_date"] = fmt.Sprintf("%d", time.Now().Add(-2*time.Hour).Unix())

	_, err := v.Validate(signInitData(t, testBotToken, fields))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestValidator_NoMaxAgeSkipsFreshnessCheck(t *testing.T) {
	v := NewValidator(testBotToken, 0)

	fields := freshFields()
	fields["auth_date"] = fmt.Sprintf("%d", time.Now().Add(-48*time.Hour).Unix())

	user, err := v.Validate(signInitData(t, testBotToken, fields))
	require.NoError(t, err)
	assert.Equal(t, int64(987654321), user.ID)
}

func TestValidator_EmptyAndUnconfigured(t *testing.T) {
	v := NewValidator(testBotToken, time.Hour)
	_, err := v.Validate("")
	assert.ErrorIs(t, err, ErrNoInitData)

	disabled := NewValidator("", time.Hour)
	assert.False(t, disabled.Enabled())
	_, err = disabled.Validate(signInitData(t, testBotToken, freshFields()))
	assert.ErrorIs(t, err, ErrNoInitData)
}
