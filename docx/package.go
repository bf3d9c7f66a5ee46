package docx

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"rtdoc/archive"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	nsRels         = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCore         = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtended     = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"

	relBase       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relCoreProps  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relOfficeDoc  = relBase + "officeDocument"
	relExtended   = relBase + "extended-properties"
	relStyles     = relBase + "styles"
	relSettings   = relBase + "settings"
	relFontTable  = relBase + "fontTable"
	relNumbering  = relBase + "numbering"
	relFootnotes  = relBase + "footnotes"
	relEndnotes   = relBase + "endnotes"
	relComments   = relBase + "comments"
	relHeader     = relBase + "header"
	relFooter     = relBase + "footer"
	relImage      = relBase + "image"
	relHyperlink  = relBase + "hyperlink"
	graphicPicURI = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	ctMain      = "application/vnd.openxmlformats-officedocument.wordprocessingml."
	ctDocument  = ctMain + "document.main+xml"
	ctStyles    = ctMain + "styles+xml"
	ctSettings  = ctMain + "settings+xml"
	ctFontTable = ctMain + "fontTable+xml"
	ctNumbering = ctMain + "numbering+xml"
	ctFootnotes = ctMain + "footnotes+xml"
	ctEndnotes  = ctMain + "endnotes+xml"
	ctComments  = ctMain + "comments+xml"
	ctHeader    = ctMain + "header+xml"
	ctFooter    = ctMain + "footer+xml"
	ctCore      = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtended  = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
)

// w3cdtf is the timestamp layout of package properties.
const w3cdtf = "2006-01-02T15:04:05Z"

type relationship struct {
	id       string
	typ      string
	target   string
	external bool
}

// relationships of a single package part.
type relationships struct {
	items []relationship
}

// add registers relationship and returns its id. Identical relationships are
// registered once.
func (rs *relationships) add(typ, target string, external bool) string {
	for _, r := range rs.items {
		if r.typ == typ && r.target == target && r.external == external {
			return r.id
		}
	}
	id := "rId" + strconv.Itoa(len(rs.items)+1)
	rs.items = append(rs.items, relationship{id: id, typ: typ, target: target, external: external})
	return id
}

func (rs *relationships) empty() bool {
	return len(rs.items) == 0
}

func (rs *relationships) document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRels)
	for _, r := range rs.items {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r.id)
		el.CreateAttr("Type", r.typ)
		el.CreateAttr("Target", r.target)
		if r.external {
			el.CreateAttr("TargetMode", "External")
		}
	}
	return doc
}

// xmlPart is an XML package part under construction.
type xmlPart struct {
	name        string // full name inside package
	contentType string
	doc         *etree.Document
	root        *etree.Element
	rels        relationships
}

// newContentPart creates word processing part with the namespaces body
// content may use.
func newContentPart(name, contentType, rootTag string) *xmlPart {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:wp", nsWP)
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:pic", nsPic)
	return &xmlPart{name: name, contentType: contentType, doc: doc, root: root}
}

// relsName returns name of the part holding relationships of part name.
func relsName(name string) string {
	dir, file := path.Split(name)
	return dir + "_rels/" + file + ".rels"
}

func serialize(doc *etree.Document) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// contentTypes lists default extensions and overrides of the package.
type contentTypes struct {
	defaults  map[string]string
	extOrder  []string
	overrides []archive.Part // Name and content type in Data
}

func newContentTypes() *contentTypes {
	ct := &contentTypes{defaults: make(map[string]string)}
	ct.addDefault("rels", ctRels)
	ct.addDefault("xml", "application/xml")
	return ct
}

func (ct *contentTypes) addDefault(ext, contentType string) {
	if _, ok := ct.defaults[ext]; ok {
		return
	}
	ct.defaults[ext] = contentType
	ct.extOrder = append(ct.extOrder, ext)
}

func (ct *contentTypes) addOverride(name, contentType string) {
	ct.overrides = append(ct.overrides, archive.Part{Name: name, Data: []byte(contentType)})
}

func (ct *contentTypes) document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)
	for _, ext := range ct.extOrder {
		el := types.CreateElement("Default")
		el.CreateAttr("Extension", ext)
		el.CreateAttr("ContentType", ct.defaults[ext])
	}
	for _, o := range ct.overrides {
		el := types.CreateElement("Override")
		el.CreateAttr("PartName", "/"+o.Name)
		el.CreateAttr("ContentType", string(o.Data))
	}
	return doc
}

// documentID derives stable identifier from document properties, the same
// document always gets the same id.
func (r *renderer) documentID() uuid.UUID {
	info := r.doc.Info
	key := strings.Join([]string{
		firstNonEmpty(info.Title, r.opts.Title),
		firstNonEmpty(info.Subject, r.opts.Subject),
		firstNonEmpty(info.Author, r.opts.Creator),
		info.Company,
		firstTime(info.Created, r.opts.Created).UTC().Format(w3cdtf),
	}, "\x00")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("rtdoc:"+key))
}

func (r *renderer) coreProperties() *etree.Document {
	info := r.doc.Info

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	props := doc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", nsCore)
	props.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	props.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	props.CreateAttr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/")
	props.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	text := func(tag, value string) {
		if value != "" {
			props.CreateElement(tag).SetText(value)
		}
	}
	text("dc:title", firstNonEmpty(info.Title, r.opts.Title))
	text("dc:subject", firstNonEmpty(info.Subject, r.opts.Subject))
	text("dc:creator", firstNonEmpty(info.Author, r.opts.Creator))
	text("cp:keywords", info.Keywords)
	text("dc:description", info.Comment)
	text("cp:lastModifiedBy", info.Operator)
	if info.Revision > 0 {
		text("cp:revision", strconv.Itoa(info.Revision))
	}
	text("cp:category", info.Category)
	if info.Version > 0 {
		text("cp:version", strconv.Itoa(info.Version))
	}
	text("dc:identifier", "urn:uuid:"+r.documentID().String())

	stamp := func(tag string, t time.Time) {
		if t.IsZero() {
			return
		}
		el := props.CreateElement(tag)
		if strings.HasPrefix(tag, "dcterms:") {
			el.CreateAttr("xsi:type", "dcterms:W3CDTF")
		}
		el.SetText(t.UTC().Format(w3cdtf))
	}
	stamp("dcterms:created", firstTime(info.Created, r.opts.Created))
	stamp("dcterms:modified", firstTime(info.Revised, r.opts.Modified))
	stamp("cp:lastPrinted", info.Printed)
	return doc
}

func (r *renderer) extendedProperties() *etree.Document {
	info := r.doc.Info

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsExtended)
	props.CreateAttr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes")

	text := func(tag, value string) {
		if value != "" {
			props.CreateElement(tag).SetText(value)
		}
	}
	text("Application", r.opts.Generator)
	text("Manager", info.Manager)
	text("Company", info.Company)
	text("HyperlinkBase", info.BaseAddress)
	props.CreateElement("DocSecurity").SetText("0")
	return doc
}

func packageRelationships() *etree.Document {
	var rs relationships
	rs.add(relOfficeDoc, "word/document.xml", false)
	rs.add(relCoreProps, "docProps/core.xml", false)
	rs.add(relExtended, "docProps/app.xml", false)
	return rs.document()
}

// assemble serializes all parts of the package in a stable order, content
// types first.
func (r *renderer) assemble() ([]archive.Part, error) {
	ct := newContentTypes()
	var parts []archive.Part

	add := func(name, contentType string, doc *etree.Document) error {
		data, err := serialize(doc)
		if err != nil {
			return fmt.Errorf("unable to serialize %s: %w", name, err)
		}
		parts = append(parts, archive.Part{Name: name, Data: data})
		if contentType != "" {
			ct.addOverride(name, contentType)
		}
		return nil
	}

	if err := add("_rels/.rels", "", packageRelationships()); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", ctCore, r.coreProperties()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", ctExtended, r.extendedProperties()); err != nil {
		return nil, err
	}
	for _, p := range r.allParts() {
		if err := add(p.name, p.contentType, p.doc); err != nil {
			return nil, err
		}
		if !p.rels.empty() {
			if err := add(relsName(p.name), "", p.rels.document()); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range r.media {
		ct.addDefault(m.format.Ext(), m.format.MIME())
		parts = append(parts, archive.Part{Name: m.name, Data: m.data, Store: true})
	}

	data, err := serialize(ct.document())
	if err != nil {
		return nil, fmt.Errorf("unable to serialize content types: %w", err)
	}
	return append([]archive.Part{{Name: "[Content_Types].xml", Data: data}}, parts...), nil
}
