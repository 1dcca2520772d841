package vfs

// Browser walks a Lister one folder at a time, keeping a cursor over the current listing
type Browser struct {
	fs       Lister
	path     []string
	items    []*Node
	cursor   int
	selected string
}

// NewBrowser creates a browser positioned at the root
func NewBrowser(fs Lister) *Browser {
	b := &Browser{fs: fs}
	b.reload()
	return b
}

func (b *Browser) reload() {
	items, err := b.fs.List(Join(b.path))
	if err != nil {
		items = nil
	}
	b.items = items
	b.cursor = 0
}

// Path returns the current folder
func (b *Browser) Path() string {
	return Join(b.path)
}

// Items returns the current listing
func (b *Browser) Items() []*Node {
	return b.items
}

// Cursor returns the index of the highlighted item
func (b *Browser) Cursor() int {
	return b.cursor
}

// Selected returns the name of the last selected item, if any
func (b *Browser) Selected() string {
	return b.selected
}

// SelectedPath returns the full path of the selected item
func (b *Browser) SelectedPath() string {
	if b.selected == "" {
		return ""
	}
	return Join(append(append([]string{}, b.path...), b.selected))
}

// Move shifts the cursor by delta, clamped to the listing, and selects the item under it
func (b *Browser) Move(delta int) {
	if len(b.items) == 0 {
		return
	}
	b.cursor = max(0, min(len(b.items)-1, b.cursor+delta))
	b.selected = b.items[b.cursor].Name
}

// Open descends into the highlighted folder, or selects the highlighted file
func (b *Browser) Open() {
	if b.cursor < 0 || b.cursor >= len(b.items) {
		return
	}
	item := b.items[b.cursor]
	if !item.IsDir {
		b.selected = item.Name
		return
	}
	b.path = append(b.path, item.Name)
	b.selected = ""
	b.reload()
}

// Back returns to the parent folder. It does nothing at the root.
func (b *Browser) Back() {
	if len(b.path) == 0 {
		return
	}
	left := b.path[len(b.path)-1]
	b.path = b.path[:len(b.path)-1]
	b.reload()
	for i, item := range b.items {
		if item.Name == left {
			b.cursor = i
			break
		}
	}
	b.selected = ""
}

// AtRoot reports whether the browser is at the top folder
func (b *Browser) AtRoot() bool {
	return len(b.path) == 0
}
