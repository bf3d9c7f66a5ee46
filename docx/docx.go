// Package docx renders document model as a word processing package: a zip
// archive of XML parts tied together by relationships and content types.
package docx

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"rtdoc/archive"
	"rtdoc/layout"
	"rtdoc/model"
	"rtdoc/style"
	"rtdoc/utils/images"
)

// Options control rendering. Document info fields take precedence over
// Title, Subject and Creator, zero timestamps are not written.
type Options struct {
	Generator string
	Creator   string
	Title     string
	Subject   string
	Created   time.Time
	Modified  time.Time
	Pictures  images.Options
	// FixZip rewrites archive without data descriptors.
	FixZip bool
}

type mediaPart struct {
	name   string
	format images.Format
	data   []byte
}

// renderer keeps per-render state, nothing survives between Render calls.
type renderer struct {
	doc  *model.Document
	opts Options
	log  *zap.Logger

	res      *style.Resolver
	lists    *layout.ListInstances
	styleIDs []string

	section   int
	available int

	document  *xmlPart
	headers   []*xmlPart // headers and footers in creation order
	footnotes *xmlPart
	endnotes  *xmlPart
	comments  *xmlPart
	cur       *xmlPart // part receiving content, owner of new relationships

	noteID     int
	bookmarkID int
	drawingID  int
	commentIDs map[int]bool // comments already written

	media      []mediaPart
	mediaIndex map[string]int // picture data -> media index

	evenHeaders bool
}

// Render produces word processing package of the document. The model is
// expected to be valid, see validate package.
func Render(doc *model.Document, opts Options, log *zap.Logger) ([]byte, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &renderer{
		doc:        doc,
		opts:       opts,
		log:        log.Named("docx"),
		res:        style.NewResolver(doc.Styles),
		lists:      layout.NumberLists(doc),
		styleIDs:   styleIDs(doc.Styles),
		commentIDs: make(map[int]bool),
		mediaIndex: make(map[string]int),
	}

	r.document = newContentPart("word/document.xml", ctDocument, "w:document")
	r.cur = r.document
	if err := r.body(); err != nil {
		return nil, err
	}

	parts, err := r.assemble()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := archive.Pack(&buf, parts, opts.FixZip); err != nil {
		return nil, fmt.Errorf("unable to pack document: %w", err)
	}
	r.log.Debug("DOCX rendered",
		zap.Int("sections", len(doc.Sections)),
		zap.Int("parts", len(parts)),
		zap.Int("media", len(r.media)),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// allParts returns XML parts living under word/ with their relationships
// registered on the main document.
func (r *renderer) allParts() []*xmlPart {
	rels := &r.document.rels
	parts := []*xmlPart{r.document, r.stylesPart(), r.settingsPart(), r.fontTablePart()}
	rels.add(relStyles, "styles.xml", false)
	rels.add(relSettings, "settings.xml", false)
	rels.add(relFontTable, "fontTable.xml", false)

	if r.doc.Lists.Len() > 0 {
		parts = append(parts, r.numberingPart())
		rels.add(relNumbering, "numbering.xml", false)
	}
	if r.footnotes != nil {
		parts = append(parts, r.footnotes)
		rels.add(relFootnotes, "footnotes.xml", false)
	}
	if r.endnotes != nil {
		parts = append(parts, r.endnotes)
		rels.add(relEndnotes, "endnotes.xml", false)
	}
	if r.comments != nil {
		parts = append(parts, r.comments)
		rels.add(relComments, "comments.xml", false)
	}
	return append(parts, r.headers...)
}

// within renders content into part p, restoring the current part after.
func (r *renderer) within(p *xmlPart, fn func() error) error {
	saved := r.cur
	r.cur = p
	defer func() { r.cur = saved }()
	return fn()
}

// addMedia stores picture data once and returns relationship id of it in the
// current part.
func (r *renderer) addMedia(pic images.Picture) string {
	idx, ok := r.mediaIndex[string(pic.Data)]
	if !ok {
		idx = len(r.media)
		r.media = append(r.media, mediaPart{
			name:   "word/media/image" + strconv.Itoa(idx+1) + "." + pic.Format.Ext(),
			format: pic.Format,
			data:   pic.Data,
		})
		r.mediaIndex[string(pic.Data)] = idx
	}
	return r.cur.rels.add(relImage, "media/image"+strconv.Itoa(idx+1)+"."+r.media[idx].format.Ext(), false)
}

// w creates element in the main namespace.
func w(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement("w:" + tag)
}

// val creates element with w:val attribute.
func val(parent *etree.Element, tag, value string) *etree.Element {
	el := w(parent, tag)
	el.CreateAttr("w:val", value)
	return el
}

func valInt(parent *etree.Element, tag string, value int) *etree.Element {
	return val(parent, tag, strconv.Itoa(value))
}

// toggle writes on/off property, off is written explicitly to override
// inherited values.
func toggle(parent *etree.Element, tag string, on bool) {
	el := w(parent, tag)
	if !on {
		el.CreateAttr("w:val", "0")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstTime(values ...time.Time) time.Time {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}
