package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	DefaultLength    = 12
	DefaultMaxLength = 1024
)

var ErrLengthTooLong = errors.New("password length is above the configured maximum")

// EventRecorder stores a record of each successful generation.
type EventRecorder interface {
	Insert(ctx context.Context, e *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *crypto.Generator
	recorder      EventRecorder
	defaultLength int
	maxLength     int
	now           func() time.Time
}

// GeneratorOption configures a GeneratorService.
type GeneratorOption func(*GeneratorService)

// WithRecorder records an event for every generated password.
func WithRecorder(r EventRecorder) GeneratorOption {
	return func(s *GeneratorService) { s.recorder = r }
}

// WithDefaultLength sets the length used when a request leaves it empty.
func WithDefaultLength(n int) GeneratorOption {
	return func(s *GeneratorService) {
		if n > 0 {
			s.defaultLength = n
		}
	}
}

// WithMaxLength caps the accepted password length.
func WithMaxLength(n int) GeneratorOption {
	return func(s *GeneratorService) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses crypto/rand.
func NewGeneratorService(gen *crypto.Generator, opts ...GeneratorOption) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	s := &GeneratorService{
		gen:           gen,
		defaultLength: DefaultLength,
		maxLength:     DefaultMaxLength,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultLength is the length applied to requests without one.
func (s *GeneratorService) DefaultLength() int { return s.defaultLength }

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	length := s.defaultLength
	if req.Length != nil {
		n, err := crypto.ParseLength(string(*req.Length))
		if err != nil {
			return model.GenerateResponse{}, err
		}
		length = n
	}

	classes, err := classesFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return s.GenerateWith(ctx, crypto.GenerationRequest{Length: length, Classes: classes}, req.Source)
}

// GenerateWith generates from an already parsed request.
func (s *GeneratorService) GenerateWith(ctx context.Context, req crypto.GenerationRequest, source string) (model.GenerateResponse, error) {
	if req.Length > s.maxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	pw, err := s.gen.Generate(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	rating := pw.Strength()

	s.record(ctx, req, pw, rating, source)

	return model.GenerateResponse{
		Password:     pw.Value,
		Length:       len(pw.Value),
		PoolSize:     pw.PoolSize,
		Entropy:      rating.Entropy,
		Strength:     string(rating.Label),
		Display:      rating.String(),
		Guessability: crypto.Guessability(pw.Value),
	}, nil
}

// record stores a generation event. Failures are logged and never fail the request.
func (s *GeneratorService) record(ctx context.Context, req crypto.GenerationRequest, pw crypto.Password, rating crypto.StrengthRating, source string) {
	if s.recorder == nil {
		return
	}
	if source == "" {
		source = model.SourceAPI
	}

	event := &model.GenerationEvent{
		ID:        uuid.NewString(),
		Length:    len(pw.Value),
		PoolSize:  pw.PoolSize,
		Classes:   req.Classes.String(),
		Entropy:   rating.Entropy,
		Strength:  string(rating.Label),
		Source:    source,
		CreatedAt: s.now().UTC(),
	}
	if err := s.recorder.Insert(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "event_id", event.ID, "error", err)
	}
}

// classesFromRequest resolves the enabled classes. An explicit classes list
// wins; otherwise each flag defaults to true.
func classesFromRequest(req model.GenerateRequest) (crypto.ClassSet, error) {
	if len(req.Classes) > 0 {
		var set crypto.ClassSet
		for _, name := range req.Classes {
			c, err := crypto.ParseClass(name)
			if err != nil {
				return 0, err
			}
			set = set.With(c)
		}
		return set, nil
	}

	var set crypto.ClassSet
	if boolOrDefault(req.Uppercase, true) {
		set = set.With(crypto.ClassUpper)
	}
	if boolOrDefault(req.Lowercase, true) {
		set = set.With(crypto.ClassLower)
	}
	if boolOrDefault(req.Numbers, true) {
		set = set.With(crypto.ClassDigit)
	}
	if boolOrDefault(req.Symbols, true) {
		set = set.With(crypto.ClassSymbol)
	}
	return set, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// IsValidationError reports whether err is caused by bad user input rather
// than a failure of the generator.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLengthFormat) ||
		errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrEmptyCharacterPool) ||
		errors.Is(err, crypto.ErrUnknownClass) ||
		errors.Is(err, ErrLengthTooLong)
}
