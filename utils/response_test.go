package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	r := Success(map[string]string{"id": "prov-1"})
	assert.True(t, r.Success)
	assert.Nil(t, r.Error)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":"prov-1"}}`, string(raw))
}

func TestFailureEnvelope(t *testing.T) {
	r := Failure(CodeValidationFailed, "hourly rate must be between $25 and $250")
	assert.False(t, r.Success)
	require.NotNil(t, r.Error)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	// No data key, no retryAfterSeconds unless set.
	assert.JSONEq(t, `{"success":false,"error":{"code":"VALIDATION_FAILED","message":"hourly rate must be between $25 and $250"}}`, string(raw))
}

func TestRateLimitedEnvelopeCarriesRetryAfter(t *testing.T) {
	r := Failure(CodeRateLimited, "too many attempts")
	r.Error.RetryAfterSeconds = 42

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":{"code":"RATE_LIMITED","message":"too many attempts","retryAfterSeconds":42}}`, string(raw))
}
