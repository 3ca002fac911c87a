package credit

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubProfiles struct {
	profile    *entity.Profile
	findErr    error
	deductLeft int
	deductErr  error
	deducts    int
}

func (s *stubProfiles) FindProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return s.profile, s.findErr
}

func (s *stubProfiles) DeductCredit(ctx context.Context, userId uuid.UUID) (int, error) {
	s.deducts++
	return s.deductLeft, s.deductErr
}

func newTestLedger(profiles ProfileStore) *Ledger {
	return NewLedger(profiles, log.New(io.Discard, "", 0))
}

func TestLedger_Check(t *testing.T) {
	tests := []struct {
		name     string
		profile  *entity.Profile
		findErr  error
		expected CheckResult
	}{
		{
			name:    "standard with credits allowed",
			profile: &entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 5},
			expected: CheckResult{
				Allowed: true, PlanType: constant.PlanTypeStandard, CreditsLeft: 5, ProfileFound: true,
			},
		},
		{
			name:    "standard with zero credits denied",
			profile: &entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 0},
			expected: CheckResult{
				Allowed: false, PlanType: constant.PlanTypeStandard, CreditsLeft: 0, ProfileFound: true,
			},
		},
		{
			name:    "genius with zero credits allowed",
			profile: &entity.Profile{PlanType: constant.PlanTypeGenius, CreditsLeft: 0},
			expected: CheckResult{
				Allowed: true, PlanType: constant.PlanTypeGenius, CreditsLeft: 0, ProfileFound: true,
			},
		},
		{
			name:     "missing profile treated as guest",
			profile:  nil,
			expected: CheckResult{Allowed: true},
		},
		{
			name:     "lookup failure treated as guest",
			findErr:  errors.New("db down"),
			expected: CheckResult{Allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newTestLedger(&stubProfiles{profile: tt.profile, findErr: tt.findErr})
			result := ledger.Check(context.Background(), uuid.New())
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLedger_Deduct(t *testing.T) {
	profiles := &stubProfiles{deductLeft: 4}
	ledger := newTestLedger(profiles)

	remaining := ledger.Deduct(context.Background(), uuid.New(), 5)

	assert.Equal(t, 4, remaining)
	assert.Equal(t, 1, profiles.deducts)
}

func TestLedger_DeductFailureIsSwallowed(t *testing.T) {
	profiles := &stubProfiles{deductErr: errors.New("db down")}
	ledger := newTestLedger(profiles)

	remaining := ledger.Deduct(context.Background(), uuid.New(), 5)

	// Best-effort estimate when the write failed.
	assert.Equal(t, 4, remaining)
}
