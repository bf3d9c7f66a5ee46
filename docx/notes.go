package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"rtdoc/model"
)

var superscript = model.CharFormat{Position: model.Some(model.VertPosSuperscript)}

// notesPart returns footnotes or endnotes part, creating it with separator
// notes on first use.
func (r *renderer) notesPart(endnote bool) *xmlPart {
	target, name, tag, contentType := &r.footnotes, "footnotes", "footnote", ctFootnotes
	if endnote {
		target, name, tag, contentType = &r.endnotes, "endnotes", "endnote", ctEndnotes
	}
	if *target != nil {
		return *target
	}

	p := newContentPart("word/"+name+".xml", contentType, "w:"+name)
	for _, sep := range []struct{ id, typ string }{
		{"-1", "separator"},
		{"0", "continuationSeparator"},
	} {
		n := w(p.root, tag)
		n.CreateAttr("w:type", sep.typ)
		n.CreateAttr("w:id", sep.id)
		w(w(w(n, "p"), "r"), sep.typ)
	}
	*target = p
	return p
}

// note writes note reference into the current run sequence and note body
// into notes part. Custom marks replace automatic numbers in both places.
func (r *renderer) note(rb *runBuilder, fn *model.Footnote) error {
	r.noteID++
	id := strconv.Itoa(r.noteID)
	tag := "footnote"
	if fn.Endnote {
		tag = "endnote"
	}

	run := rb.newRun(superscript)
	ref := w(run, tag+"Reference")
	if fn.Mark != "" {
		ref.CreateAttr("w:customMarkFollows", "1")
	}
	ref.CreateAttr("w:id", id)
	if fn.Mark != "" {
		w(run, "t").SetText(fn.Mark)
	}

	part := r.notesPart(fn.Endnote)
	note := w(part.root, tag)
	note.CreateAttr("w:id", id)

	body := fn.Body
	if body == nil {
		body = &model.Paragraph{}
	}
	return r.within(part, func() error {
		_, err := r.paragraph(note, body, func(p *etree.Element) {
			mark := w(p, "r")
			r.runProperties(mark, "", superscript)
			if fn.Mark == "" {
				w(mark, tag+"Ref")
			} else {
				w(mark, "t").SetText(fn.Mark)
			}
			t := w(w(p, "r"), "t")
			t.CreateAttr("xml:space", "preserve")
			t.SetText(" ")
		})
		if err != nil {
			return fmt.Errorf("note body: %w", err)
		}
		return nil
	})
}

// comment returns comment referenced by alias with its number, nil when
// there is nothing to emit.
func (r *renderer) comment(alias string) (*model.Comment, int) {
	if alias == "" {
		return nil, 0
	}
	e, err := r.doc.Comments.Get(alias)
	if err != nil || e.Value.IsEmpty() {
		return nil, 0
	}
	return e.Value, e.Index
}

// commentReference closes comment range, references the comment and writes
// its body into comments part once.
func (r *renderer) commentReference(parent *etree.Element, c *model.Comment, n int) error {
	id := strconv.Itoa(n)
	w(parent, "commentRangeEnd").CreateAttr("w:id", id)
	w(w(parent, "r"), "commentReference").CreateAttr("w:id", id)

	if r.commentIDs[n] {
		return nil
	}
	r.commentIDs[n] = true
	if r.comments == nil {
		r.comments = newContentPart("word/comments.xml", ctComments, "w:comments")
	}

	el := w(r.comments.root, "comment")
	el.CreateAttr("w:id", id)
	el.CreateAttr("w:author", c.Author)
	if t := firstTime(c.Time, r.opts.Modified); !t.IsZero() {
		el.CreateAttr("w:date", t.UTC().Format(w3cdtf))
	}
	el.CreateAttr("w:initials", c.AuthorInitials())

	return r.within(r.comments, func() error {
		first := true
		for _, p := range c.Body {
			if p == nil {
				continue
			}
			var lead func(*etree.Element)
			if first {
				lead = func(p *etree.Element) {
					w(w(p, "r"), "annotationRef")
				}
				first = false
			}
			if _, err := r.paragraph(el, p, lead); err != nil {
				return fmt.Errorf("comment %d: %w", n, err)
			}
		}
		return nil
	})
}
