// Package choice groups list entries into screen-sized blocks and tracks
// the selected entry for list widgets.
package choice

// Wrap splits text into chunks of at most width runes. There is no word
// awareness. Empty text yields a single empty line so that every entry
// occupies at least one row. A width below 1 is treated as 1.
func Wrap(text string, width int) []string {
	width = max(width, 1)
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// Line is one visible row of the current block.
type Line struct {
	Text     string
	Choice   int  // Index of the entry the row belongs to
	First    bool // First row of its entry
	Selected bool // Row belongs to the selected entry
}

// Paginator holds the wrapped entries, their block partition and the
// selected entry. The zero value is empty; use Build.
type Paginator struct {
	maxChars int
	maxLines int

	raw     []string
	wrapped [][]string
	blocks  [][]int
	blockOf []int
	current int
}

// Build wraps the entries to maxChars and partitions them into blocks of
// at most maxLines rows. Limits below 1 are treated as 1.
func Build(choices []string, maxChars, maxLines int) *Paginator {
	p := &Paginator{
		maxChars: max(maxChars, 1),
		maxLines: max(maxLines, 1),
	}
	p.Rebuild(choices)
	return p
}

// Rebuild replaces the entries, keeping the limits, and selects entry 0.
//
// Entries are walked in order with a running row count. When adding an
// entry would exceed maxLines it opens a new block instead, with its own
// row count as the new running total. A block is never left empty, so an
// entry taller than maxLines sits alone in its block and is cut off when
// displayed.
//
// The overflow test is strict: a block that lands exactly on maxLines
// rows keeps its last entry, so ["a", "b"] at two lines is one block.
// An oversized first entry opens no empty leading block.
func (p *Paginator) Rebuild(choices []string) {
	p.raw = append(p.raw[:0], choices...)
	p.wrapped = make([][]string, len(choices))
	p.blockOf = make([]int, len(choices))
	p.blocks = nil
	p.current = 0

	if len(choices) == 0 {
		return
	}

	p.blocks = [][]int{nil}
	running := 0
	for i, text := range choices {
		lines := Wrap(text, p.maxChars)
		p.wrapped[i] = lines

		running += len(lines)
		last := len(p.blocks) - 1
		if running > p.maxLines && len(p.blocks[last]) > 0 {
			running = len(lines)
			p.blocks = append(p.blocks, nil)
			last++
		}
		p.blocks[last] = append(p.blocks[last], i)
		p.blockOf[i] = last
	}
}

// Len returns the number of entries.
func (p *Paginator) Len() int { return len(p.raw) }

// MaxChars returns the wrap width.
func (p *Paginator) MaxChars() int { return p.maxChars }

// MaxLines returns the visible row capacity.
func (p *Paginator) MaxLines() int { return p.maxLines }

// Current returns the selected entry, or -1 when there are none.
func (p *Paginator) Current() int {
	if len(p.raw) == 0 {
		return -1
	}
	return p.current
}

// Text returns the raw text of the selected entry.
func (p *Paginator) Text() string {
	if len(p.raw) == 0 {
		return ""
	}
	return p.raw[p.current]
}

// Lines returns the wrapped rows of entry i.
func (p *Paginator) Lines(i int) []string {
	if i < 0 || i >= len(p.wrapped) {
		return nil
	}
	return p.wrapped[i]
}

// Blocks returns a copy of the block partition.
func (p *Paginator) Blocks() [][]int {
	out := make([][]int, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = append([]int(nil), b...)
	}
	return out
}

// BlockOf returns the block holding entry i.
func (p *Paginator) BlockOf(i int) (int, bool) {
	if i < 0 || i >= len(p.blockOf) {
		return 0, false
	}
	return p.blockOf[i], true
}

// CurrentBlock returns the block holding the selected entry, or -1.
func (p *Paginator) CurrentBlock() int {
	if len(p.raw) == 0 {
		return -1
	}
	return p.blockOf[p.current]
}

// Select moves the selection to i, clamped to the valid range.
// It reports whether the selection changed.
func (p *Paginator) Select(i int) bool {
	if len(p.raw) == 0 {
		return false
	}
	i = max(0, min(i, len(p.raw)-1))
	if i == p.current {
		return false
	}
	p.current = i
	return true
}

// Up selects the previous entry.
func (p *Paginator) Up() bool { return p.Select(p.current - 1) }

// Down selects the next entry.
func (p *Paginator) Down() bool { return p.Select(p.current + 1) }

// PageUp selects the first entry of the previous block, or the first
// entry overall when already in the first block.
func (p *Paginator) PageUp() bool {
	b := p.CurrentBlock()
	if b <= 0 {
		return p.Select(0)
	}
	return p.Select(p.blocks[b-1][0])
}

// PageDown selects the first entry of the next block, or the last entry
// overall when already in the last block.
func (p *Paginator) PageDown() bool {
	b := p.CurrentBlock()
	if b < 0 {
		return false
	}
	if b >= len(p.blocks)-1 {
		return p.Select(len(p.raw) - 1)
	}
	return p.Select(p.blocks[b+1][0])
}

// Visible returns the rows of the block holding the selection, capped at
// maxLines, and whether blocks exist above and below it.
func (p *Paginator) Visible() (lines []Line, scrollUp, scrollDown bool) {
	b := p.CurrentBlock()
	if b < 0 {
		return nil, false, false
	}

	for _, i := range p.blocks[b] {
		for n, text := range p.wrapped[i] {
			if len(lines) >= p.maxLines {
				break
			}
			lines = append(lines, Line{
				Text:     text,
				Choice:   i,
				First:    n == 0,
				Selected: i == p.current,
			})
		}
	}
	return lines, b > 0, b < len(p.blocks)-1
}
