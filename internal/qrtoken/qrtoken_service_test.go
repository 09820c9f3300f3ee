package qrtoken

import (
	"testing"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestNewService_MissingSecret(t *testing.T) {
	_, err := NewService("", 60, clock.System())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerate_DeterministicWithinBucket(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 5, 0, time.UTC)

	svcA, err := NewService("secret", 60, clock.Fixed(base))
	assert.NoError(t, err)
	svcB, err := NewService("secret", 60, clock.Fixed(base.Add(30*time.Second)))
	assert.NoError(t, err)

	// same 60s bucket, same scope
	assert.Equal(t, svcA.Generate("loc-1", "shift-1"), svcB.Generate("loc-1", "shift-1"))

	// scope changes the token
	assert.NotEqual(t, svcA.Generate("loc-1", "shift-1"), svcA.Generate("loc-2", "shift-1"))
}

func TestGenerate_RotatesNextBucket(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 5, 0, time.UTC)

	svcNow, _ := NewService("secret", 60, clock.Fixed(base))
	svcNext, _ := NewService("secret", 60, clock.Fixed(base.Add(60*time.Second)))

	assert.NotEqual(t, svcNow.Generate("loc-1", ""), svcNext.Generate("loc-1", ""))
}

func TestValidate_AcceptsPreviousBucketOnly(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 5, 0, time.UTC)

	past, _ := NewService("secret", 60, clock.Fixed(base))
	token := past.Generate("loc-1", "shift-1")

	oneBucketLater, _ := NewService("secret", 60, clock.Fixed(base.Add(60*time.Second)))
	assert.True(t, oneBucketLater.Validate(token, "loc-1", "shift-1"))

	twoBucketsLater, _ := NewService("secret", 60, clock.Fixed(base.Add(120*time.Second)))
	assert.False(t, twoBucketsLater.Validate(token, "loc-1", "shift-1"))
}

func TestValidate_RejectsWrongScopeAndSecret(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 5, 0, time.UTC)

	svc, _ := NewService("secret", 60, clock.Fixed(base))
	token := svc.Generate("loc-1", "shift-1")

	assert.False(t, svc.Validate(token, "loc-2", "shift-1"))
	assert.False(t, svc.Validate(token, "loc-1", ""))

	other, _ := NewService("another-secret", 60, clock.Fixed(base))
	assert.False(t, other.Validate(token, "loc-1", "shift-1"))
}
