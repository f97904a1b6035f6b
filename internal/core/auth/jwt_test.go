package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "product-api", TTL: time.Hour}

	token, err := j.Issue("abc123", "john@doe.io", "John")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UID)
	assert.Equal(t, "john@doe.io", claims.Email)
	assert.Equal(t, "John", claims.FirstName)
	assert.Equal(t, "product-api", claims.Issuer)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "product-api", TTL: time.Hour}
	other := &JWTer{Secret: []byte("different"), Issuer: "product-api", TTL: time.Hour}

	token, err := other.Issue("abc123", "john@doe.io", "John")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "product-api", TTL: -2 * time.Minute}

	token, err := j.Issue("abc123", "john@doe.io", "John")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}
