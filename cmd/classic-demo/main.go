package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/virtualwonders/ckeditor5-editor-classic/dom"
	"github.com/virtualwonders/ckeditor5-editor-classic/editor"
	"github.com/virtualwonders/ckeditor5-editor-classic/ui"
)

const defaultPage = `<html><body>
<h1>Classic editor demo</h1>
<div id="editor">
<h2>Welcome</h2>
<p>This content was read from the <strong>source element</strong>.</p>
<p>Ctrl+S writes it back, Ctrl+Q quits.</p>
</div>
</body></html>`

type demoConfig struct {
	Page        string   `yaml:"page"`
	Element     string   `yaml:"element"`
	Toolbar     []string `yaml:"toolbar"`
	Placeholder string   `yaml:"placeholder"`
	Log         string   `yaml:"log"`
}

func loadConfig(path string) (demoConfig, error) {
	cfg := demoConfig{Element: "editor"}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Element == "" {
		cfg.Element = "editor"
	}
	return cfg, nil
}

type model struct {
	editor *editor.ClassicEditor
	view   ui.View
	saved  bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.saved = m.editor.UpdateSourceElement() == nil
			return m, nil
		}
		m.saved = false
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := "Ctrl+S save, Ctrl+Q quit"
	if m.saved {
		status = "saved to source element | " + status
	}
	return m.view.View() + "\n" + status
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.Log != "" {
		zc := zap.NewDevelopmentConfig()
		zc.OutputPaths = []string{cfg.Log}
		if logger, err = zc.Build(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	page := defaultPage
	if cfg.Page != "" {
		raw, err := os.ReadFile(cfg.Page)
		if err != nil {
			return err
		}
		page = string(raw)
	}
	doc, err := dom.ParseDocument(page)
	if err != nil {
		return err
	}
	el := dom.FindByID(doc, cfg.Element)
	if el == nil {
		return fmt.Errorf("no element with id %q in page", cfg.Element)
	}

	ctx := context.Background()
	ed, err := editor.Create(ctx, editor.FromElement(el), editor.Config{
		Toolbar: cfg.Toolbar,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	classicUI, ok := ed.UI().(*ui.ClassicUI)
	if !ok {
		return fmt.Errorf("unexpected UI type %T", ed.UI())
	}
	view := classicUI.Editable()
	if cfg.Placeholder != "" {
		view = ui.NewView(ed.Root(), ui.Options{
			Toolbar:     cfg.Toolbar,
			Placeholder: cfg.Placeholder,
		})
	}

	p := tea.NewProgram(model{editor: ed, view: view}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if err := ed.Destroy(ctx); err != nil {
		return err
	}

	// The page now carries the edited content in the source element.
	out, err := dom.RenderDocument(doc)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
