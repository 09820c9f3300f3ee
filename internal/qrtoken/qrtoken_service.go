package qrtoken

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"
)

// DefaultBucketSeconds is the rotation period of the dynamic QR token.
const DefaultBucketSeconds = 60

// ErrMissingSecret aborts startup: running unkeyed would make every
// rendered token forgeable.
var ErrMissingSecret = errors.New("qr token secret is not configured (QR_SECRET_KEY)")

// Service derives a rotating, non-persisted token proving a QR payload
// was rendered within the current time bucket for a location/shift scope.
type Service interface {
	Generate(locationID, shiftID string) string
	Validate(token, locationID, shiftID string) bool
	Lifespan() time.Duration
}

type service struct {
	secret        string
	bucketSeconds int64
	clk           clock.Clock
}

func NewService(secret string, bucketSeconds int64, clk clock.Clock) (Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if bucketSeconds <= 0 {
		bucketSeconds = DefaultBucketSeconds
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{secret: secret, bucketSeconds: bucketSeconds, clk: clk}, nil
}

func (s *service) Lifespan() time.Duration {
	return time.Duration(s.bucketSeconds) * time.Second
}

func (s *service) currentBucket() int64 {
	return s.clk.Now().UnixMilli() / (s.bucketSeconds * 1000)
}

func (s *service) tokenFor(bucket int64, locationID, shiftID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d-%s-%s", s.secret, bucket, locationID, shiftID)))
	return hex.EncodeToString(sum[:])
}

// Generate is deterministic within a bucket and rotates every bucket.
func (s *service) Generate(locationID, shiftID string) string {
	return s.tokenFor(s.currentBucket(), locationID, shiftID)
}

// Validate accepts the current bucket's token or the immediately
// preceding one, tolerating clock skew of at most one bucket width.
func (s *service) Validate(token, locationID, shiftID string) bool {
	bucket := s.currentBucket()
	for _, b := range []int64{bucket, bucket - 1} {
		expected := s.tokenFor(b, locationID, shiftID)
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}
