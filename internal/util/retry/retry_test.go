package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPoll_ImmediateSuccess(t *testing.T) {
	t.Parallel()
	attempts := 0
	cond := func(_ context.Context) (bool, error) {
		attempts++
		return true, nil
	}

	done, err := Poll(context.Background(), cond, WithInterval(time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !done {
		t.Error("Expected condition to be reached")
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestPoll_SuccessAfterAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	cond := func(_ context.Context) (bool, error) {
		attempts++
		return attempts >= 3, nil
	}

	done, err := Poll(context.Background(), cond, WithInterval(time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !done {
		t.Error("Expected condition to be reached")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestPoll_ExhaustsAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	cond := func(_ context.Context) (bool, error) {
		attempts++
		return false, nil
	}

	done, err := Poll(context.Background(), cond,
		WithInterval(time.Millisecond),
		WithMaxAttempts(12))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if done {
		t.Error("Expected timeout, condition reported as reached")
	}
	if attempts != 12 {
		t.Errorf("Expected exactly 12 attempts, got: %d", attempts)
	}
}

func TestPoll_ConditionError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	cond := func(_ context.Context) (bool, error) {
		return false, boom
	}

	done, err := Poll(context.Background(), cond, WithInterval(time.Millisecond))

	if !errors.Is(err, boom) {
		t.Errorf("Expected condition error, got: %v", err)
	}
	if done {
		t.Error("Expected done=false on error")
	}
}

func TestPoll_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done, err := Poll(ctx, func(_ context.Context) (bool, error) {
		return false, nil
	}, WithInterval(time.Hour))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if done {
		t.Error("Expected done=false on cancellation")
	}
}
