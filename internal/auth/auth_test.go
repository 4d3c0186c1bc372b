package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testEmail = "admin@example.com"

func testService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	return New("test-secret", testEmail, hash, ttl, zap.NewNop())
}

func TestLoginAndVerify(t *testing.T) {
	svc := testService(t, time.Hour)

	token, err := svc.Login(testEmail, "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, ok := svc.Verify(token)
	require.True(t, ok)
	assert.Equal(t, testEmail, identity)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testService(t, time.Hour)

	_, err := svc.Login(testEmail, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login("someone@else.com", "hunter2")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestVerifyRejectsGarbageAndForeignTokens(t *testing.T) {
	svc := testService(t, time.Hour)

	_, ok := svc.Verify("not-a-token")
	assert.False(t, ok)

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	foreign := New("different-secret", testEmail, hash, time.Hour, zap.NewNop())
	token, err := foreign.Login(testEmail, "hunter2")
	require.NoError(t, err)

	_, ok = svc.Verify(token)
	assert.False(t, ok, "token signed with another secret must not verify")
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc := testService(t, -time.Minute)
	token, err := svc.Login(testEmail, "hunter2")
	require.NoError(t, err)

	_, ok := svc.Verify(token)
	assert.False(t, ok)
}

func TestCookieRoundTrip(t *testing.T) {
	svc := testService(t, time.Hour)
	token, err := svc.Login(testEmail, "hunter2")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	svc.SetCookie(rec, token)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	identity, ok := svc.Identity(req)
	require.True(t, ok)
	assert.Equal(t, testEmail, identity)
}

func TestIdentityWithoutCookie(t *testing.T) {
	svc := testService(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := svc.Identity(req)
	assert.False(t, ok)
}
