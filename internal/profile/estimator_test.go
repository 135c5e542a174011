package profile

import (
	"context"
	"testing"
	"time"
)

func newTestEstimator() *Estimator {
	return NewEstimator(DefaultConfig(), NewMemStore())
}

func TestEstimate_UnseenSkillDefaults(t *testing.T) {
	e := newTestEstimator()
	sm, err := e.Estimate(context.Background(), "u1", "arrays")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if sm.Mastery != 0 || sm.Confidence != 0 {
		t.Errorf("unseen skill: mastery=%f confidence=%f, want 0/0", sm.Mastery, sm.Confidence)
	}
	if sm.Trend != TrendFlat {
		t.Errorf("unseen skill trend = %q, want flat", sm.Trend)
	}
}

func TestApplyOutcome_MovesTowardSignal(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	sm, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if sm.Mastery != 0.25 { // 0 + 0.25*(1-0)
		t.Errorf("mastery = %f, want 0.25", sm.Mastery)
	}
	if sm.Trend != TrendRising {
		t.Errorf("trend = %q, want rising", sm.Trend)
	}

	sm, err = e.ApplyOutcome(ctx, "u1", "arrays", 0.0, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if sm.Mastery != 0.1875 { // 0.25 + 0.25*(0-0.25)
		t.Errorf("mastery = %f, want 0.1875", sm.Mastery)
	}
	if sm.Trend != TrendFalling {
		t.Errorf("trend = %q, want falling", sm.Trend)
	}
}

func TestApplyOutcome_ClampsToUnitInterval(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	now := time.Now()

	// Hammer the update with out-of-range signals; mastery must stay in [0,1].
	signals := []float64{5.0, -3.0, 1.0, 1.0, -1.0, 2.5, 0.0, 9.9}
	for _, sig := range signals {
		sm, err := e.ApplyOutcome(ctx, "u1", "hashing", sig, now)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if sm.Mastery < 0 || sm.Mastery > 1 {
			t.Fatalf("mastery %f left [0,1] after signal %f", sm.Mastery, sig)
		}
	}
}

func TestApplyOutcome_ConfidenceGrowsAndCaps(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	now := time.Now()

	var sm SkillMastery
	var err error
	for i := 0; i < 15; i++ {
		sm, err = e.ApplyOutcome(ctx, "u1", "trees", 0.8, now)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if sm.Confidence != 1.0 {
		t.Errorf("confidence = %f after 15 observations, want 1.0", sm.Confidence)
	}
	if sm.Observations != 15 {
		t.Errorf("observations = %d, want 15", sm.Observations)
	}
}

func TestDecay_WithinGraceIsNoop(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, start); err != nil {
		t.Fatalf("apply: %v", err)
	}

	changed, err := e.Decay(ctx, "u1", start.AddDate(0, 0, 10)) // within 14-day grace
	if err != nil {
		t.Fatalf("decay: %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("decay within grace changed %d rows, want 0", len(changed))
	}
}

func TestDecay_BeyondGraceReducesMastery(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, start); err != nil {
		t.Fatalf("apply: %v", err)
	}
	before, _ := e.Estimate(ctx, "u1", "arrays")

	changed, err := e.Decay(ctx, "u1", start.AddDate(0, 0, 28)) // 14 days beyond grace
	if err != nil {
		t.Fatalf("decay: %v", err)
	}
	if len(changed) != 1 {
		t.Fatalf("decay changed %d rows, want 1", len(changed))
	}
	after := changed[0]
	if after.Mastery >= before.Mastery {
		t.Errorf("mastery did not decay: before=%f after=%f", before.Mastery, after.Mastery)
	}
	if after.Mastery < 0 {
		t.Errorf("mastery %f below 0 after decay", after.Mastery)
	}
	if after.Trend != TrendFalling {
		t.Errorf("trend = %q after decay, want falling", after.Trend)
	}
}

func TestDecay_IdempotentPerDay(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, start); err != nil {
		t.Fatalf("apply: %v", err)
	}

	later := start.AddDate(0, 0, 30)
	first, err := e.Decay(ctx, "u1", later)
	if err != nil {
		t.Fatalf("decay: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first decay changed %d rows, want 1", len(first))
	}

	// Re-running on the same day (e.g. after a crash) must be a no-op.
	second, err := e.Decay(ctx, "u1", later.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("decay rerun: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("decay rerun changed %d rows, want 0", len(second))
	}
}

func TestApplyOutcome_ResetsDecayCounter(t *testing.T) {
	e := newTestEstimator()
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, start); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := e.Decay(ctx, "u1", start.AddDate(0, 0, 30)); err != nil {
		t.Fatalf("decay: %v", err)
	}

	// A fresh attempt restarts the idle clock.
	sm, err := e.ApplyOutcome(ctx, "u1", "arrays", 1.0, start.AddDate(0, 0, 31))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if sm.DecayedDays != 0 {
		t.Errorf("DecayedDays = %d after attempt, want 0", sm.DecayedDays)
	}
}
