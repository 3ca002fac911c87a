package credit

import (
	"context"
	"log"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/entity"

	"github.com/google/uuid"
)

// ProfileStore is the slice of the profile repository the ledger needs.
type ProfileStore interface {
	FindProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	DeductCredit(ctx context.Context, userId uuid.UUID) (int, error)
}

// CheckResult is the outcome of a pre-turn credit gate.
type CheckResult struct {
	Allowed      bool
	PlanType     string
	CreditsLeft  int
	ProfileFound bool
}

// Ledger gates chat turns on the student's remaining daily credits.
// Genius-plan students are exempt from metering.
type Ledger struct {
	profiles ProfileStore
	logger   *log.Logger
}

func NewLedger(profiles ProfileStore, logger *log.Logger) *Ledger {
	return &Ledger{
		profiles: profiles,
		logger:   logger,
	}
}

// Check decides whether the user may ask a question. It never returns an
// error: a missing profile or a failed lookup is treated as an unmetered
// guest so the student is not blocked by bookkeeping.
func (l *Ledger) Check(ctx context.Context, userId uuid.UUID) CheckResult {
	profile, err := l.profiles.FindProfile(ctx, userId)
	if err != nil {
		l.logger.Printf("[CREDIT] Profile lookup failed for %s: %v", userId, err)
		return CheckResult{Allowed: true}
	}
	if profile == nil {
		return CheckResult{Allowed: true}
	}

	result := CheckResult{
		PlanType:     profile.PlanType,
		CreditsLeft:  profile.CreditsLeft,
		ProfileFound: true,
	}
	if profile.PlanType != constant.PlanTypeGenius && profile.CreditsLeft <= 0 {
		return result
	}
	result.Allowed = true
	return result
}

// Deduct burns one credit after a fully served turn and returns the new
// balance. Failures are logged and swallowed, the answer already went out.
func (l *Ledger) Deduct(ctx context.Context, userId uuid.UUID, creditsBefore int) int {
	remaining, err := l.profiles.DeductCredit(ctx, userId)
	if err != nil {
		l.logger.Printf("[CREDIT] Deduct failed for %s: %v", userId, err)
		if creditsBefore > 0 {
			return creditsBefore - 1
		}
		return 0
	}
	return remaining
}
