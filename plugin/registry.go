package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/frenofclaw/ledger/event"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery so emission never needs reflection.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onInit               []OnInit
	onShutdown           []OnShutdown
	onSnippetSubmitted   []OnSnippetSubmitted
	onSnippetUpdated     []OnSnippetUpdated
	onSnippetDeleted     []OnSnippetDeleted
	onSnippetTipped      []OnSnippetTipped
	onTipsWithdrawn      []OnTipsWithdrawn
	onTreasuryWithdrawn  []OnTreasuryWithdrawn
	onHintRequested      []OnHintRequested
	onHintFulfilled      []OnHintFulfilled
	onReputationUpvote   []OnReputationUpvote
	onReputationDownvote []OnReputationDownvote
	onLanguageRegistered []OnLanguageRegistered
	onPauseToggled       []OnPauseToggled
	onBadgeAwarded       []OnBadgeAwarded
	onTagAdded           []OnTagAdded
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnInit); ok {
		r.onInit = append(r.onInit, v)
	}
	if v, ok := p.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := p.(OnSnippetSubmitted); ok {
		r.onSnippetSubmitted = append(r.onSnippetSubmitted, v)
	}
	if v, ok := p.(OnSnippetUpdated); ok {
		r.onSnippetUpdated = append(r.onSnippetUpdated, v)
	}
	if v, ok := p.(OnSnippetDeleted); ok {
		r.onSnippetDeleted = append(r.onSnippetDeleted, v)
	}
	if v, ok := p.(OnSnippetTipped); ok {
		r.onSnippetTipped = append(r.onSnippetTipped, v)
	}
	if v, ok := p.(OnTipsWithdrawn); ok {
		r.onTipsWithdrawn = append(r.onTipsWithdrawn, v)
	}
	if v, ok := p.(OnTreasuryWithdrawn); ok {
		r.onTreasuryWithdrawn = append(r.onTreasuryWithdrawn, v)
	}
	if v, ok := p.(OnHintRequested); ok {
		r.onHintRequested = append(r.onHintRequested, v)
	}
	if v, ok := p.(OnHintFulfilled); ok {
		r.onHintFulfilled = append(r.onHintFulfilled, v)
	}
	if v, ok := p.(OnReputationUpvote); ok {
		r.onReputationUpvote = append(r.onReputationUpvote, v)
	}
	if v, ok := p.(OnReputationDownvote); ok {
		r.onReputationDownvote = append(r.onReputationDownvote, v)
	}
	if v, ok := p.(OnLanguageRegistered); ok {
		r.onLanguageRegistered = append(r.onLanguageRegistered, v)
	}
	if v, ok := p.(OnPauseToggled); ok {
		r.onPauseToggled = append(r.onPauseToggled, v)
	}
	if v, ok := p.(OnBadgeAwarded); ok {
		r.onBadgeAwarded = append(r.onBadgeAwarded, v)
	}
	if v, ok := p.(OnTagAdded); ok {
		r.onTagAdded = append(r.onTagAdded, v)
	}

	r.logger.Info("plugin registered", "name", p.Name())

	return nil
}

// Get returns a plugin by name, or nil.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitInit calls OnInit for all plugins that implement it.
func (r *Registry) EmitInit(ctx context.Context, ledger interface{}) {
	r.mu.RLock()
	plugins := r.onInit
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInit(ctx, ledger)
		}); err != nil {
			r.logger.Warn("plugin OnInit failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitShutdown calls OnShutdown for all plugins that implement it.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	plugins := r.onShutdown
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShutdown(ctx)
		}); err != nil {
			r.logger.Warn("plugin OnShutdown failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitSnippetSubmitted emits a snippet submitted event.
func (r *Registry) EmitSnippetSubmitted(ctx context.Context, ev *event.SnippetSubmitted) {
	r.mu.RLock()
	plugins := r.onSnippetSubmitted
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSnippetSubmitted(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnSnippetSubmitted failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitSnippetUpdated emits a snippet updated event.
func (r *Registry) EmitSnippetUpdated(ctx context.Context, ev *event.SnippetUpdated) {
	r.mu.RLock()
	plugins := r.onSnippetUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSnippetUpdated(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnSnippetUpdated failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitSnippetDeleted emits a snippet deleted event.
func (r *Registry) EmitSnippetDeleted(ctx context.Context, ev *event.SnippetDeleted) {
	r.mu.RLock()
	plugins := r.onSnippetDeleted
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSnippetDeleted(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnSnippetDeleted failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitSnippetTipped emits a snippet tipped event.
func (r *Registry) EmitSnippetTipped(ctx context.Context, ev *event.SnippetTipped) {
	r.mu.RLock()
	plugins := r.onSnippetTipped
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSnippetTipped(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnSnippetTipped failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitTipsWithdrawn emits a tips withdrawn event.
func (r *Registry) EmitTipsWithdrawn(ctx context.Context, ev *event.TipsWithdrawn) {
	r.mu.RLock()
	plugins := r.onTipsWithdrawn
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTipsWithdrawn(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnTipsWithdrawn failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitTreasuryWithdrawn emits a treasury withdrawn event.
func (r *Registry) EmitTreasuryWithdrawn(ctx context.Context, ev *event.TreasuryWithdrawn) {
	r.mu.RLock()
	plugins := r.onTreasuryWithdrawn
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTreasuryWithdrawn(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnTreasuryWithdrawn failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitHintRequested emits a hint requested event.
func (r *Registry) EmitHintRequested(ctx context.Context, ev *event.HintRequested) {
	r.mu.RLock()
	plugins := r.onHintRequested
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnHintRequested(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnHintRequested failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitHintFulfilled emits a hint fulfilled event.
func (r *Registry) EmitHintFulfilled(ctx context.Context, ev *event.HintFulfilled) {
	r.mu.RLock()
	plugins := r.onHintFulfilled
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnHintFulfilled(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnHintFulfilled failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitReputationUpvote emits a reputation upvote event.
func (r *Registry) EmitReputationUpvote(ctx context.Context, ev *event.ReputationUpvote) {
	r.mu.RLock()
	plugins := r.onReputationUpvote
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnReputationUpvote(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnReputationUpvote failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitReputationDownvote emits a reputation downvote event.
func (r *Registry) EmitReputationDownvote(ctx context.Context, ev *event.ReputationDownvote) {
	r.mu.RLock()
	plugins := r.onReputationDownvote
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnReputationDownvote(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnReputationDownvote failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitLanguageRegistered emits a language registered event.
func (r *Registry) EmitLanguageRegistered(ctx context.Context, ev *event.LanguageRegistered) {
	r.mu.RLock()
	plugins := r.onLanguageRegistered
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnLanguageRegistered(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnLanguageRegistered failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitPauseToggled emits a pause toggled event.
func (r *Registry) EmitPauseToggled(ctx context.Context, ev *event.PauseToggled) {
	r.mu.RLock()
	plugins := r.onPauseToggled
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPauseToggled(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnPauseToggled failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitBadgeAwarded emits a badge awarded event.
func (r *Registry) EmitBadgeAwarded(ctx context.Context, ev *event.BadgeAwarded) {
	r.mu.RLock()
	plugins := r.onBadgeAwarded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBadgeAwarded(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnBadgeAwarded failed", "plugin", p.Name(), "error", err)
		}
	}
}

// EmitTagAdded emits a tag added event.
func (r *Registry) EmitTagAdded(ctx context.Context, ev *event.TagAdded) {
	r.mu.RLock()
	plugins := r.onTagAdded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTagAdded(ctx, ev)
		}); err != nil {
			r.logger.Warn("plugin OnTagAdded failed", "plugin", p.Name(), "error", err)
		}
	}
}

// callWithTimeout calls a plugin function with a timeout.
// Plugins should never block the ledger pipeline.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
