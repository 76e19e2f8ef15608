package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/model"
)

var (
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrGenerationFailed     = errors.New("generation failed")
	ErrItemNotFound         = errors.New("item not found")
	ErrLengthOutOfRange     = fmt.Errorf("password length must be between %d and %d", model.MinPasswordLength, model.MaxPasswordLength)
	ErrQuantityOutOfRange   = fmt.Errorf("quantity must be between %d and %d", model.MinQuantity, model.MaxQuantity)
)

// DefaultDelay lets the busy state render before the generation loop runs.
const DefaultDelay = 300 * time.Millisecond

// Presenter receives the batch and the busy state.
type Presenter interface {
	Render(items []model.GeneratedItem)
	SetBusy(busy bool)
}

// BuildBatch produces opts.Quantity items. The character pool is built once
// and shared by every password in the batch.
func BuildBatch(src crypto.Source, newID func() string, opts model.GenerationOptions) []model.GeneratedItem {
	pool := crypto.CharacterPool(opts.IncludeUppercase, opts.IncludeNumbers, opts.IncludeSymbols)

	items := make([]model.GeneratedItem, 0, max(opts.Quantity, 0))
	for i := 0; i < opts.Quantity; i++ {
		id := newID()
		items = append(items, model.GeneratedItem{
			ID:       id,
			Username: crypto.GenerateUsername(src),
			Password: crypto.GeneratePassword(src, pool, opts.PasswordLength),
		})
	}

	return items
}

// GeneratorService owns the current result set and the generating flag.
type GeneratorService struct {
	src       crypto.Source
	presenter Presenter
	delay     time.Duration
	newID     func() string

	mu         sync.RWMutex
	items      []model.GeneratedItem
	generating bool
}

// Option customizes a GeneratorService.
type Option func(*GeneratorService)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(s *GeneratorService) { s.delay = d }
}

// WithIDFunc overrides the item identifier generator.
func WithIDFunc(fn func() string) Option {
	return func(s *GeneratorService) { s.newID = fn }
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(src crypto.Source, presenter Presenter, opts ...Option) *GeneratorService {
	s := &GeneratorService{
		src:       src,
		presenter: presenter,
		delay:     DefaultDelay,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate replaces the current result set with a fresh batch.
// The context only aborts the delay that precedes generation; once items are
// being produced the batch always completes.
func (s *GeneratorService) Generate(ctx context.Context, opts model.GenerationOptions) (items []model.GeneratedItem, err error) {
	if !s.acquire() {
		return nil, ErrGenerationInProgress
	}
	defer s.release()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("batch generation panicked", "panic", r)
			items, err = nil, fmt.Errorf("%w: %v", ErrGenerationFailed, r)
		}
	}()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	batch := BuildBatch(s.src, s.newID, opts)

	s.mu.Lock()
	s.items = batch
	s.mu.Unlock()

	slog.Debug("batch generated", "quantity", len(batch), "length", opts.PasswordLength)

	if s.presenter != nil {
		s.presenter.Render(cloneItems(batch))
	}

	return cloneItems(batch), nil
}

// Items returns a snapshot of the current result set.
func (s *GeneratorService) Items() []model.GeneratedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Item looks up one item of the current result set by ID.
func (s *GeneratorService) Item(id string) (model.GeneratedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.GeneratedItem{}, ErrItemNotFound
}

// Generating reports whether a batch is currently being produced.
func (s *GeneratorService) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}

func (s *GeneratorService) acquire() bool {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return false
	}
	s.generating = true
	s.mu.Unlock()

	if s.presenter != nil {
		s.presenter.SetBusy(true)
	}
	return true
}

func (s *GeneratorService) release() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()

	if s.presenter != nil {
		s.presenter.SetBusy(false)
	}
}

// Options converts a request into validated GenerationOptions.
// Zero values fall back to the defaults.
func Options(req model.GenerateRequest) (model.GenerationOptions, error) {
	opts := model.DefaultOptions()

	if req.Length != 0 {
		opts.PasswordLength = req.Length
	}
	if req.Quantity != 0 {
		opts.Quantity = req.Quantity
	}
	opts.IncludeUppercase = boolOrDefault(req.Uppercase, true)
	opts.IncludeNumbers = boolOrDefault(req.Numbers, true)
	opts.IncludeSymbols = boolOrDefault(req.Symbols, true)

	if opts.PasswordLength < model.MinPasswordLength || opts.PasswordLength > model.MaxPasswordLength {
		return model.GenerationOptions{}, ErrLengthOutOfRange
	}
	if opts.Quantity < model.MinQuantity || opts.Quantity > model.MaxQuantity {
		return model.GenerationOptions{}, ErrQuantityOutOfRange
	}

	return opts, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func cloneItems(items []model.GeneratedItem) []model.GeneratedItem {
	if items == nil {
		return []model.GeneratedItem{}
	}
	return append([]model.GeneratedItem(nil), items...)
}
