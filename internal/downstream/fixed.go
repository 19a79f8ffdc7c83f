package downstream

import (
	"context"
	"sync"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Submission is one call recorded by Fixed.
type Submission struct {
	Kind   dao.Kind
	Record any
}

// Fixed is a deterministic Backend: every call gets the configured answer.
type Fixed struct {
	Accept     bool
	Err        error
	Registered bool

	mu    sync.Mutex
	calls []Submission
}

func (f *Fixed) Submit(_ context.Context, kind dao.Kind, record any) (bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Submission{Kind: kind, Record: record})
	f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	return f.Accept, nil
}

func (f *Fixed) IsRegistered(context.Context, string) (bool, error) {
	return f.Registered, f.Err
}

func (f *Fixed) Calls() []Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Submission(nil), f.calls...)
}
