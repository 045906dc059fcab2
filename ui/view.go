package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualwonders/ckeditor5-editor-classic/internal/grapheme"
	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// Options configures the classic UI.
type Options struct {
	// Toolbar lists the toolbar items to display. Nil selects the
	// editor's default; an empty non-nil slice hides the toolbar.
	Toolbar []string

	// Style overrides DefaultStyle().
	Style *Style

	// KeyMap overrides DefaultKeyMap().
	KeyMap *KeyMap

	// Placeholder is shown when the root is empty and unfocused.
	Placeholder string

	// OnChange fires after every observable content or cursor change.
	OnChange func(ChangeEvent)
}

// View is the Bubble Tea component for the editable surface plus toolbar.
// It is bound to one model root; hosts embed it in their own model.
type View struct {
	root  *model.RootElement
	style Style
	keys  KeyMap
	opts  Options

	viewport viewport.Model
	focused  bool

	cursor    model.Pos
	anchor    model.Pos
	selecting bool

	lastVersion uint64
	lastCursor  model.Pos
}

// NewView builds a view over root. The zero Options give the default
// style, keymap, and toolbar.
func NewView(root *model.RootElement, opts Options) View {
	style := DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	v := View{
		root:     root,
		style:    style,
		keys:     keys,
		opts:     opts,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	v.lastVersion = root.Document().Version()
	v.lastCursor = v.cursor
	v.rebuildContent()
	return v
}

// Root returns the model root the view renders.
func (v View) Root() *model.RootElement { return v.root }

func (v View) Init() tea.Cmd { return nil }

// Cursor returns the current cursor position.
func (v View) Cursor() model.Pos { return v.cursor }

// selection returns the active selection, normalized, or false when the
// selection is empty.
func (v View) selection() (model.Range, bool) {
	if !v.selecting {
		return model.Range{}, false
	}
	r := model.NormalizeRange(model.Range{Start: v.anchor, End: v.cursor})
	if r.IsEmpty() {
		return model.Range{}, false
	}
	return r, true
}

// Selection returns the active selection, normalized.
func (v View) Selection() (model.Range, bool) { return v.selection() }

func (v View) SetSize(width, height int) View {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if v.showToolbar() && height > 0 {
		height--
	}
	v.viewport.Width = width
	v.viewport.Height = height

	v.rebuildContent()
	v.followCursor()
	return v
}

func (v View) Focus() View {
	if !v.focused {
		v.focused = true
		v.rebuildContent()
		v.followCursor()
	}
	return v
}

func (v View) Blur() View {
	if v.focused {
		v.focused = false
		v.rebuildContent()
	}
	return v
}

func (v View) Focused() bool { return v.focused }

func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return v.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		v.handleKey(msg)
		v.sync()
		return v, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		// The host may have mutated the root outside of key handling.
		v.syncContent()
		return v, cmd
	default:
		v.sync()
		return v, nil
	}
}

func (v View) View() string {
	if !v.showToolbar() {
		return v.viewport.View()
	}
	return v.renderToolbar() + "\n" + v.viewport.View()
}

func (v *View) handleKey(msg tea.KeyMsg) {
	keys := v.keys
	switch {
	case key.Matches(msg, keys.Left):
		v.moveTo(v.prevPos(v.cursor), false)
	case key.Matches(msg, keys.Right):
		v.moveTo(v.nextPos(v.cursor), false)
	case key.Matches(msg, keys.Up):
		v.moveTo(v.verticalPos(-1), false)
	case key.Matches(msg, keys.Down):
		v.moveTo(v.verticalPos(1), false)
	case key.Matches(msg, keys.ShiftLeft):
		v.moveTo(v.prevPos(v.cursor), true)
	case key.Matches(msg, keys.ShiftRight):
		v.moveTo(v.nextPos(v.cursor), true)
	case key.Matches(msg, keys.ShiftUp):
		v.moveTo(v.verticalPos(-1), true)
	case key.Matches(msg, keys.ShiftDown):
		v.moveTo(v.verticalPos(1), true)
	case key.Matches(msg, keys.Home):
		v.moveTo(model.Pos{Block: v.cursor.Block}, false)
	case key.Matches(msg, keys.End):
		v.moveTo(model.Pos{Block: v.cursor.Block, Offset: v.root.BlockLen(v.cursor.Block)}, false)

	case key.Matches(msg, keys.Enter):
		v.deleteSelectionIfAny()
		v.cursor = v.root.SplitBlock(v.cursor)
	case key.Matches(msg, keys.Backspace):
		v.deleteBackward()
	case key.Matches(msg, keys.Delete):
		v.deleteForward()

	case key.Matches(msg, keys.Bold):
		v.toggleMark(model.Bold)
	case key.Matches(msg, keys.Italic):
		v.toggleMark(model.Italic)
	case key.Matches(msg, keys.InlineCode):
		v.toggleMark(model.Code)

	case key.Matches(msg, keys.Heading1):
		v.setBlockType(model.Heading1)
	case key.Matches(msg, keys.Heading2):
		v.setBlockType(model.Heading2)
	case key.Matches(msg, keys.Heading3):
		v.setBlockType(model.Heading3)
	case key.Matches(msg, keys.ParagraphType):
		v.setBlockType(model.Paragraph)
	case key.Matches(msg, keys.CodeBlockType):
		v.setBlockType(model.CodeBlock)

	case key.Matches(msg, keys.Undo):
		if v.root.Undo() {
			v.cursor = v.root.Clamp(v.cursor)
			v.selecting = false
		}
	case key.Matches(msg, keys.Redo):
		if v.root.Redo() {
			v.cursor = v.root.Clamp(v.cursor)
			v.selecting = false
		}

	default:
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
			v.insert(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			v.insert(" ")
		}
	}
}

// moveTo moves the cursor, extending the selection when selecting is set
// and collapsing it otherwise.
func (v *View) moveTo(p model.Pos, selecting bool) {
	if selecting && !v.selecting {
		v.anchor = v.cursor
		v.selecting = true
	}
	if !selecting {
		v.selecting = false
	}
	v.cursor = v.root.Clamp(p)
}

func (v *View) prevPos(p model.Pos) model.Pos {
	if p.Offset > 0 {
		return model.Pos{Block: p.Block, Offset: p.Offset - 1}
	}
	if p.Block > 0 {
		return model.Pos{Block: p.Block - 1, Offset: v.root.BlockLen(p.Block - 1)}
	}
	return p
}

func (v *View) nextPos(p model.Pos) model.Pos {
	if p.Offset < v.root.BlockLen(p.Block) {
		return model.Pos{Block: p.Block, Offset: p.Offset + 1}
	}
	if p.Block < v.root.BlockCount()-1 {
		return model.Pos{Block: p.Block + 1}
	}
	return p
}

func (v *View) verticalPos(delta int) model.Pos {
	return model.Pos{Block: v.cursor.Block + delta, Offset: v.cursor.Offset}
}

func (v *View) insert(s string) {
	v.deleteSelectionIfAny()
	v.cursor = v.root.InsertText(v.cursor, s, v.marksAtCursor())
}

func (v *View) deleteBackward() {
	if v.deleteSelectionIfAny() {
		return
	}
	prev := v.prevPos(v.cursor)
	if prev == v.cursor {
		return
	}
	v.cursor = v.root.DeleteRange(model.Range{Start: prev, End: v.cursor})
}

func (v *View) deleteForward() {
	if v.deleteSelectionIfAny() {
		return
	}
	next := v.nextPos(v.cursor)
	if next == v.cursor {
		return
	}
	v.cursor = v.root.DeleteRange(model.Range{Start: v.cursor, End: next})
}

func (v *View) deleteSelectionIfAny() bool {
	r, ok := v.selection()
	if !ok {
		return false
	}
	v.cursor = v.root.DeleteRange(r)
	v.selecting = false
	return true
}

func (v *View) toggleMark(m model.Mark) {
	r, ok := v.selection()
	if !ok {
		return
	}
	v.root.ToggleMark(r, m)
}

func (v *View) setBlockType(t model.BlockType) {
	r, ok := v.selection()
	if !ok {
		r = model.Range{Start: v.cursor, End: v.cursor}
	}
	v.root.SetBlockType(r, t)
}

// marksAtCursor returns the marks of the grapheme left of the cursor, so
// typing inside styled text continues the style.
func (v *View) marksAtCursor() model.Mark {
	if v.cursor.Offset == 0 {
		return 0
	}
	want := v.cursor.Offset - 1
	off := 0
	for _, s := range v.root.BlockAt(v.cursor.Block).Spans {
		n := grapheme.Count(s.Text)
		if want < off+n {
			return s.Marks
		}
		off += n
	}
	return 0
}

// sync rebuilds content and fires OnChange when the root or cursor
// changed since the last observation.
func (v *View) sync() {
	ver := v.root.Document().Version()
	cursorChanged := v.cursor != v.lastCursor
	if ver == v.lastVersion && !cursorChanged {
		return
	}
	v.lastVersion = ver
	v.lastCursor = v.cursor
	v.rebuildContent()
	if cursorChanged {
		v.followCursor()
	}
	if v.opts.OnChange != nil {
		v.opts.OnChange(v.buildChangeEvent())
	}
}

// syncContent refreshes rendering without firing OnChange, for host-side
// mutations observed during scroll events.
func (v *View) syncContent() {
	ver := v.root.Document().Version()
	if ver == v.lastVersion && v.cursor == v.lastCursor {
		return
	}
	v.lastVersion = ver
	v.lastCursor = v.cursor
	v.rebuildContent()
}

func (v *View) rebuildContent() {
	v.viewport.SetContent(v.renderContent())
}

// followCursor keeps the cursor's block inside the viewport.
func (v *View) followCursor() {
	h := v.viewport.Height - v.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := v.cursor.Block
	if row < v.viewport.YOffset {
		v.viewport.SetYOffset(row)
		return
	}
	if row >= v.viewport.YOffset+h {
		v.viewport.SetYOffset(row - h + 1)
	}
}

func (v View) showToolbar() bool {
	return v.opts.Toolbar == nil || len(v.opts.Toolbar) > 0
}

func (v View) toolbarItems() []string {
	if v.opts.Toolbar != nil {
		return v.opts.Toolbar
	}
	return DefaultToolbar()
}
