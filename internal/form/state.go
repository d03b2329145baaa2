// Package form holds the state of the single transfer form.
//
// Status moves Idle -> Submitting -> Completed | Failed. A new submission is
// refused while one is in flight, and optionally for a cooldown after a
// completed transfer.
package form

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/devnet-transfer/internal/model"
)

var (
	// ErrSubmissionInProgress is returned by Begin while another submission runs
	ErrSubmissionInProgress = errors.New("a transfer is already being submitted")
	// ErrCooldownActive is wrapped by Begin while the post-transfer cooldown runs
	ErrCooldownActive = errors.New("cooldown active")
	// ErrNotSubmitting is returned when Complete or Fail is called outside a submission
	ErrNotSubmitting = errors.New("no submission in progress")
)

// State is the form state holder. The zero value is not usable; call NewState.
type State struct {
	mu sync.Mutex

	address string
	amount  string
	status  model.FormStatus
	result  *model.SendResult
	err     *model.ErrorResponse

	cooldown     time.Duration
	lastComplete time.Time
	now          func() time.Time
}

// NewState creates an idle form. cooldown=0 disables the post-transfer wait.
func NewState(cooldown time.Duration) *State {
	return &State{
		status:   model.FormStatusIdle,
		cooldown: cooldown,
		now:      time.Now,
	}
}

func (s *State) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

func (s *State) SetAddress(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = address
}

func (s *State) Amount() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amount
}

func (s *State) SetAmount(amount string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = amount
}

// Result returns the last successful result, or nil
func (s *State) Result() *model.SendResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// Begin moves the form to Submitting and drops the previous result
func (s *State) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.FormStatusSubmitting {
		return ErrSubmissionInProgress
	}

	if s.cooldown > 0 && !s.lastComplete.IsZero() {
		if elapsed := s.now().Sub(s.lastComplete); elapsed < s.cooldown {
			remaining := s.cooldown - elapsed
			return fmt.Errorf("%w, please wait %v", ErrCooldownActive, remaining.Round(time.Second))
		}
	}

	s.status = model.FormStatusSubmitting
	s.result = nil
	s.err = nil
	return nil
}

// Complete records a successful submission
func (s *State) Complete(txID, explorerURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.FormStatusSubmitting {
		return ErrNotSubmitting
	}

	s.lastComplete = s.now()
	s.status = model.FormStatusCompleted
	s.result = &model.SendResult{
		TxID:        txID,
		ExplorerURL: explorerURL,
		CompletedAt: s.lastComplete,
	}
	return nil
}

// Fail records a failed submission
func (s *State) Fail(failure model.ErrorResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.FormStatusSubmitting {
		return ErrNotSubmitting
	}

	s.status = model.FormStatusFailed
	s.err = &failure
	return nil
}

// Reset clears inputs and result, as when navigating away from the page
func (s *State) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == model.FormStatusSubmitting {
		return ErrSubmissionInProgress
	}

	s.address = ""
	s.amount = ""
	s.status = model.FormStatusIdle
	s.result = nil
	s.err = nil
	return nil
}

// Snapshot returns a copy of the whole form for rendering
func (s *State) Snapshot() model.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := model.FormState{
		Address: s.address,
		Amount:  s.amount,
		Status:  s.status,
	}
	if s.result != nil {
		r := *s.result
		out.Result = &r
	}
	if s.err != nil {
		e := *s.err
		out.Error = &e
	}
	return out
}
