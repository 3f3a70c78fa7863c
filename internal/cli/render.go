package cli

import (
	"strings"

	"github.com/dostoys/seth/internal/text"

	"github.com/mattn/go-runewidth"
)

// Tree glyphs for path-list values:
//
//	PATH ╤ /usr/local/bin:
//	     ├ /usr/bin:
//	     └ /bin:
const (
	treeFirst  = " ╤ "
	treeMiddle = " ├ "
	treeLast   = " └ "
)

type renderer struct {
	wrapper       *text.Wrapper
	wrap          bool
	width         int
	nameWidth     int
	align         Alignment
	listSeparator string
}

func (r renderer) pad(s string, width int) string {
	if r.align == AlignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// line writes s, wrapped with continuation lines hanging under the value
// column when wrapping is enabled.
func (r renderer) line(b *strings.Builder, s string, hang int) {
	if r.wrap {
		s = r.wrapper.Wrap(s, []int{r.width}, []int{0, hang})
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func (r renderer) render(b *strings.Builder, v variable) {
	entries := splitPathList(v.Value, r.listSeparator)
	if entries == nil {
		r.renderPlain(b, v)
		return
	}

	column := max(r.nameWidth, runewidth.StringWidth(v.Name))
	hang := column + len(nameSeparator)

	if !r.wrap {
		b.WriteString(r.pad(v.Name, r.nameWidth) + nameSeparator + entries[0] + r.listSeparator + "\n")
		for _, entry := range entries[1:] {
			b.WriteString(strings.Repeat(" ", hang) + entry + r.listSeparator + "\n")
		}
		return
	}

	r.line(b, r.pad(v.Name, r.nameWidth)+treeFirst+entries[0]+r.listSeparator, hang)
	for i, entry := range entries[1:] {
		glyph := treeMiddle
		if i == len(entries)-2 {
			glyph = treeLast
		}
		r.line(b, r.pad("", column)+glyph+entry+r.listSeparator, hang)
	}
}

func (r renderer) renderPlain(b *strings.Builder, v variable) {
	column := max(r.nameWidth, runewidth.StringWidth(v.Name))
	r.line(b, r.pad(v.Name, r.nameWidth)+nameSeparator+v.Value, column+len(nameSeparator))
}
