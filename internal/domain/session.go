package domain

import "strings"

// DefaultPageSize is the number of characters shown per editor page
const DefaultPageSize = 2000

// SplitPages splits text into fixed-size chunks of size characters,
// preserving order. The final chunk may be shorter. Characters are
// counted in runes so multi-byte text never splits mid-sequence.
func SplitPages(text string, size int) []string {
	if size <= 0 {
		size = DefaultPageSize
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	pages := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		pages = append(pages, string(runes[i:end]))
	}
	return pages
}

// EditSession holds the paginated transcript during editing. The
// baseline pages stay immutable; edits only touch the working copy.
type EditSession struct {
	pages   []string
	edited  []string
	current int
}

// NewEditSession paginates rendered text into an editable session
func NewEditSession(text string, pageSize int) *EditSession {
	pages := SplitPages(text, pageSize)
	edited := make([]string, len(pages))
	copy(edited, pages)

	return &EditSession{
		pages:  pages,
		edited: edited,
	}
}

// PageCount returns the number of pages
func (s *EditSession) PageCount() int {
	return len(s.pages)
}

// Current returns the current page index (0-based)
func (s *EditSession) Current() int {
	return s.current
}

// CurrentText returns the working-copy text of the current page
func (s *EditSession) CurrentText() string {
	if len(s.edited) == 0 {
		return ""
	}
	return s.edited[s.current]
}

// Next advances to the next page if one exists
func (s *EditSession) Next() bool {
	if s.current < len(s.pages)-1 {
		s.current++
		return true
	}
	return false
}

// Prev moves back one page if possible
func (s *EditSession) Prev() bool {
	if s.current > 0 {
		s.current--
		return true
	}
	return false
}

// GoTo jumps to a page index
func (s *EditSession) GoTo(i int) error {
	if i < 0 || i >= len(s.pages) {
		return ErrPageOutOfRange
	}
	s.current = i
	return nil
}

// Edit replaces the working copy of the current page. Other pages are
// untouched.
func (s *EditSession) Edit(text string) {
	if len(s.edited) == 0 {
		return
	}
	s.edited[s.current] = text
}

// EditAt replaces the working copy of page i
func (s *EditSession) EditAt(i int, text string) error {
	if i < 0 || i >= len(s.edited) {
		return ErrPageOutOfRange
	}
	s.edited[i] = text
	return nil
}

// ResetPage restores page i to its baseline content
func (s *EditSession) ResetPage(i int) error {
	if i < 0 || i >= len(s.pages) {
		return ErrPageOutOfRange
	}
	s.edited[i] = s.pages[i]
	return nil
}

// ResetAll discards every edit
func (s *EditSession) ResetAll() {
	copy(s.edited, s.pages)
}

// Modified reports whether any page differs from its baseline
func (s *EditSession) Modified() bool {
	for i := range s.pages {
		if s.edited[i] != s.pages[i] {
			return true
		}
	}
	return false
}

// Assemble concatenates all working-copy pages into the final
// document. With no edits this reproduces the original text exactly.
func (s *EditSession) Assemble() string {
	return strings.Join(s.edited, "")
}
