package model

import (
	"maps"
)

// Deep copy functions for the document model. Formats, styles, fonts and
// colors are plain values and are copied by assignment, everything reachable
// through pointers or slices is duplicated.

// CopyFrom replaces document state with a deep copy of other. Registry
// indices are preserved.
func (d *Document) CopyFrom(other *Document) {
	d.Charset = other.Charset
	d.CodePage = other.CodePage
	d.Info = other.Info
	d.Page = other.Page
	d.View = other.View
	d.Typography = other.Typography
	d.Variables = maps.Clone(other.Variables)
	if d.Variables == nil {
		d.Variables = make(map[string]string)
	}

	fresh := NewDocument()
	d.Colors, d.Fonts, d.Styles = fresh.Colors, fresh.Fonts, fresh.Styles
	d.Lists, d.Bookmarks, d.Comments = fresh.Lists, fresh.Bookmarks, fresh.Comments

	d.Colors.CopyFrom(other.Colors, nil)
	d.Fonts.CopyFrom(other.Fonts, nil)
	d.Styles.CopyFrom(other.Styles, nil)
	d.Lists.CopyFrom(other.Lists, (*List).Clone)
	d.Bookmarks.CopyFrom(other.Bookmarks, nil)
	d.Comments.CopyFrom(other.Comments, cloneComment)

	d.Sections = make([]*Section, len(other.Sections))
	for i, s := range other.Sections {
		d.Sections[i] = cloneSection(s)
	}
}

// Clone returns deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{}
	c.CopyFrom(d)
	return c
}

func cloneSection(s *Section) *Section {
	if s == nil {
		return nil
	}
	return &Section{
		Style:  s.Style,
		Format: s.Format,
		Header: cloneHeaderFooter(s.Header),
		Footer: cloneHeaderFooter(s.Footer),
		Body:   cloneElements(s.Body),
	}
}

func cloneHeaderFooter(h HeaderFooter) HeaderFooter {
	return HeaderFooter{
		First: cloneElements(h.First),
		Odd:   cloneElements(h.Odd),
		Even:  cloneElements(h.Even),
	}
}

func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	result := make([]Element, len(elements))
	for i, e := range elements {
		result[i] = cloneElement(e)
	}
	return result
}

// cloneElement copies known element kinds, anything else is shared as is and
// will be rejected by emitters later.
func cloneElement(e Element) Element {
	switch v := e.(type) {
	case *Paragraph:
		return cloneParagraph(v)
	case *Table:
		return cloneTable(v)
	case *Container:
		if v == nil {
			return v
		}
		return &Container{Content: cloneElements(v.Content)}
	default:
		return e
	}
}

func cloneParagraph(p *Paragraph) *Paragraph {
	if p == nil {
		return nil
	}
	clone := &Paragraph{Format: p.Format}
	if p.Runs != nil {
		clone.Runs = make([]*Run, len(p.Runs))
		for i, r := range p.Runs {
			clone.Runs[i] = cloneRun(r)
		}
	}
	return clone
}

func cloneRun(r *Run) *Run {
	if r == nil {
		return nil
	}
	clone := &Run{
		Style:    r.Style,
		Format:   r.Format,
		Bookmark: r.Bookmark,
		Comment:  r.Comment,
	}
	if r.Link != nil {
		link := *r.Link
		clone.Link = &link
	}
	if r.Items != nil {
		clone.Items = make([]Inline, len(r.Items))
		for i, it := range r.Items {
			clone.Items[i] = cloneInline(it)
		}
	}
	return clone
}

func cloneInline(it Inline) Inline {
	switch v := it.(type) {
	case *Picture:
		if v == nil {
			return v
		}
		pic := *v
		pic.Data = append([]byte(nil), v.Data...)
		return &pic
	case *Footnote:
		if v == nil {
			return v
		}
		return &Footnote{Endnote: v.Endnote, Mark: v.Mark, Body: cloneParagraph(v.Body)}
	default:
		// Text and Special are values
		return it
	}
}

func cloneTable(t *Table) *Table {
	if t == nil {
		return nil
	}
	clone := &Table{
		Format:  t.Format,
		Columns: append([]Column(nil), t.Columns...),
	}
	if t.Rows != nil {
		clone.Rows = make([]*Row, len(t.Rows))
		for i, row := range t.Rows {
			clone.Rows[i] = cloneRow(row)
		}
	}
	return clone
}

func cloneRow(r *Row) *Row {
	if r == nil {
		return nil
	}
	clone := &Row{Format: r.Format}
	if r.Cells != nil {
		clone.Cells = make([]*Cell, len(r.Cells))
		for i, c := range r.Cells {
			if c == nil {
				continue
			}
			clone.Cells[i] = &Cell{Format: c.Format, Content: cloneElements(c.Content)}
		}
	}
	return clone
}

func cloneComment(c *Comment) *Comment {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Body != nil {
		clone.Body = make([]*Paragraph, len(c.Body))
		for i, p := range c.Body {
			clone.Body[i] = cloneParagraph(p)
		}
	}
	return &clone
}
