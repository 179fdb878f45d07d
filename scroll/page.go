package scroll

import (
	"github.com/samber/lo"
)

// Page is a virtual scrollable document of fixed height
// Offset stays in [0, height]; an event is published only when the offset changes
type Page struct {
	feed   *Feed
	offset float64
	height float64
}

// NewPage creates a page scrolled to the top
func NewPage(height float64) *Page {
	return &Page{
		feed:   NewFeed(),
		height: max(0, height),
	}
}

// Subscribe implements Source
func (p *Page) Subscribe(fn func(offset float64)) func() {
	return p.feed.Subscribe(fn)
}

// ScrollBy moves the offset by delta, positive is down
func (p *Page) ScrollBy(delta float64) {
	p.ScrollTo(p.offset + delta)
}

// ScrollTo jumps to offset, clamped to the page
func (p *Page) ScrollTo(offset float64) {
	next := lo.Clamp(offset, 0, p.height)
	if next == p.offset {
		return
	}
	p.offset = next
	p.feed.Push(next)
}

// Offset returns the current scroll offset
func (p *Page) Offset() float64 {
	return p.offset
}

// Height returns the maximum offset
func (p *Page) Height() float64 {
	return p.height
}
