package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Plugin extends the editor during creation. Init runs before the UI and
// initial data exist; plugins that need them subscribe to EventReady.
type Plugin interface {
	Name() string
	// Init attaches the plugin. An error aborts editor creation.
	Init(e *Editor) error
	// Destroy releases plugin resources, in reverse load order.
	Destroy() error
}

// loadPlugins initializes the configured plugins strictly in order. The
// first failure aborts; its error propagates to the caller unwrapped.
func (e *Editor) loadPlugins(ctx context.Context, plugins []Plugin) error {
	seen := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := p.Name()
		if _, ok := seen[name]; ok {
			return newError(CodeDuplicatePlugin, fmt.Sprintf("plugin %q is configured twice", name))
		}
		seen[name] = struct{}{}

		e.log.Debug("loading plugin", zap.String("plugin", name))
		if err := p.Init(e); err != nil {
			return err
		}
		e.plugins = append(e.plugins, p)
	}
	return nil
}

// destroyPlugins tears plugins down in reverse load order. All plugins are
// destroyed even when some fail; the first error is returned.
func (e *Editor) destroyPlugins() error {
	var firstErr error
	for i := len(e.plugins) - 1; i >= 0; i-- {
		p := e.plugins[i]
		if err := p.Destroy(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("destroying plugin %q: %w", p.Name(), err)
		}
	}
	e.plugins = nil
	return firstErr
}

// Plugins returns the names of loaded plugins in load order.
func (e *Editor) Plugins() []string {
	out := make([]string, len(e.plugins))
	for i, p := range e.plugins {
		out[i] = p.Name()
	}
	return out
}
