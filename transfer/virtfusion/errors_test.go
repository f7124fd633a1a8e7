package virtfusion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "message field",
			body:     `{"message": "Server not found"}`,
			expected: "Server not found",
		},
		{
			name:     "msg field",
			body:     `{"msg": "invalid token"}`,
			expected: "invalid token",
		},
		{
			name:     "errors object",
			body:     `{"errors": {"email": ["taken"]}}`,
			expected: `{"email": ["taken"]}`,
		},
		{
			name:     "html fallback",
			body:     "  <html>502 Bad Gateway</html>\n",
			expected: "<html>502 Bad Gateway</html>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractMessage([]byte(tc.body)))
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	notFound := NewAPIError(404, []byte(`{"message": "No user found"}`))
	conflict := NewAPIError(409, []byte(`{"message": "Email already exists"}`))
	sameOwner := NewAPIError(422, []byte(`{"message": "The owner is the same as the existing owner."}`))
	otherValidation := NewAPIError(422, []byte(`{"message": "The name field is required."}`))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(conflict))
	assert.False(t, IsNotFound(errors.New("plain")))

	assert.True(t, IsConflict(conflict))
	assert.False(t, IsConflict(notFound))

	assert.True(t, IsAlreadyOwner(sameOwner))
	assert.False(t, IsAlreadyOwner(otherValidation), "422 without the owner message is a regular validation failure")
	assert.False(t, IsAlreadyOwner(notFound))
}

func TestErrorClassifiersWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("transfer failed"), NewAPIError(404, []byte(`{"message": "gone"}`)))
	assert.True(t, IsNotFound(wrapped))
}

func TestRemoteMessage(t *testing.T) {
	assert.Equal(t, "Server not found", RemoteMessage(NewAPIError(404, []byte(`{"message": "Server not found"}`))))
	assert.Equal(t, "dial tcp: timeout", RemoteMessage(errors.New("dial tcp: timeout")))
	assert.Equal(t, "", RemoteMessage(nil))
}

func TestAPIErrorString(t *testing.T) {
	err := NewAPIError(500, []byte(`{"message": "boom"}`))
	assert.Equal(t, "virtfusion: HTTP 500: boom", err.Error())
}
