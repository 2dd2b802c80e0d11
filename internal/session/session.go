// Package session holds the presentation state of one interactive user: the
// last successfully generated password and its rating.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

var ErrNothingToCopy = errors.New("no password to copy")

// Session is the state owned by a presentation layer. A failed action never
// changes it.
type Session struct {
	mu        sync.Mutex
	svc       *service.GeneratorService
	clipboard clipboard.Clipboard
	last      *model.GenerateResponse
}

// New creates a session generating through svc and copying to cb.
func New(svc *service.GeneratorService, cb clipboard.Clipboard) *Session {
	return &Session{svc: svc, clipboard: cb}
}

// Generate parses the raw length field, generates a password for the given
// request and remembers it on success.
func (s *Session) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Source == "" {
		req.Source = model.SourceCLI
	}

	resp, err := s.svc.Generate(ctx, req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	s.mu.Lock()
	s.last = &resp
	s.mu.Unlock()

	return resp, nil
}

// Copy writes the last generated password to the clipboard.
func (s *Session) Copy() error {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last == nil {
		return ErrNothingToCopy
	}
	if err := s.clipboard.WriteAll(last.Password); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Last returns the last generated password, if any.
func (s *Session) Last() (model.GenerateResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return model.GenerateResponse{}, false
	}
	return *s.last, true
}
