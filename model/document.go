// Package model contains format agnostic representation of a rich text
// document: settings, resource registries and sections with their element
// trees. The model is built by mutation and treated as read-only while being
// rendered.
package model

import (
	"time"

	"rtdoc/registry"
	"rtdoc/units"
)

// Info is document properties block.
type Info struct {
	Title       string    `yaml:"title"`
	Subject     string    `yaml:"subject"`
	Author      string    `yaml:"author"`
	Manager     string    `yaml:"manager"`
	Company     string    `yaml:"company"`
	Operator    string    `yaml:"operator"`
	Category    string    `yaml:"category"`
	Keywords    string    `yaml:"keywords"`
	Comment     string    `yaml:"comment"`
	BaseAddress string    `yaml:"base_address"`
	Created     time.Time `yaml:"created"`
	Revised     time.Time `yaml:"revised"`
	Printed     time.Time `yaml:"printed"`
	Version     int       `yaml:"version" validate:"min=0,max=32767"`
	Revision    int       `yaml:"revision" validate:"min=0,max=32767"`
}

type FootnotePolicy struct {
	Position FootnotePosition `yaml:"position"`
	Format   NumberFormat     `yaml:"format"`
	Start    int              `yaml:"start" validate:"min=1,max=32767"`
	Restart  NoteRestart      `yaml:"restart"`
}

type EndnotePolicy struct {
	Position EndnotePosition `yaml:"position"`
	Format   NumberFormat    `yaml:"format"`
	Start    int             `yaml:"start" validate:"min=1,max=32767"`
}

// PageSetup is document wide page geometry, sections may override parts of
// it.
type PageSetup struct {
	Width         units.Size     `yaml:"width" validate:"min=1440,max=31680"`
	Height        units.Size     `yaml:"height" validate:"min=1440,max=31680"`
	MarginLeft    units.Size     `yaml:"margin_left" validate:"min=0,max=31680"`
	MarginRight   units.Size     `yaml:"margin_right" validate:"min=0,max=31680"`
	MarginTop     units.Size     `yaml:"margin_top" validate:"min=0,max=31680"`
	MarginBottom  units.Size     `yaml:"margin_bottom" validate:"min=0,max=31680"`
	Gutter        units.Size     `yaml:"gutter" validate:"min=0,max=31680"`
	FacingPages   bool           `yaml:"facing_pages"`
	MirrorMargins bool           `yaml:"mirror_margins"`
	Landscape     bool           `yaml:"landscape"`
	Footnotes     FootnotePolicy `yaml:"footnotes"`
	Endnotes      EndnotePolicy  `yaml:"endnotes"`
}

type ViewSettings struct {
	Kind  ViewKind `yaml:"kind"`
	Scale int      `yaml:"scale" validate:"min=10,max=500"`
	Zoom  ZoomKind `yaml:"zoom"`
}

type Typography struct {
	DefaultTab         units.Size      `yaml:"default_tab" validate:"min=0,max=31680"`
	AutoHyphenation    bool            `yaml:"auto_hyphenation"`
	HyphenationZone    Opt[units.Size] `yaml:"hyphenation_zone" validate:"omitempty,min=0,max=31680"`
	ConsecutiveHyphens int             `yaml:"consecutive_hyphens" validate:"min=0,max=32767"`
	HyphenateCaps      bool            `yaml:"hyphenate_caps"`
	Kerning            Opt[units.Size] `yaml:"kerning" validate:"omitempty,min=0,max=32760"`
	Language           string          `yaml:"language"`
	WidowControl       bool            `yaml:"widow_control"`
}

// HeaderFooter holds content for first, odd (default) and even pages.
type HeaderFooter struct {
	First []Element
	Odd   []Element
	Even  []Element
}

func (h HeaderFooter) IsEmpty() bool {
	return len(h.First) == 0 && len(h.Odd) == 0 && len(h.Even) == 0
}

// Section is a part of the document with its own page geometry. Section
// exclusively owns its element trees.
type Section struct {
	Style  string
	Format SectionFormat
	Header HeaderFooter
	Footer HeaderFooter
	Body   []Element
}

// Add appends elements to the section body.
func (s *Section) Add(elements ...Element) *Section {
	s.Body = append(s.Body, elements...)
	return s
}

// Geometry is effective page geometry of a section in twips.
type Geometry struct {
	Width          int
	Height         int
	MarginLeft     int
	MarginRight    int
	MarginTop      int
	MarginBottom   int
	Gutter         int
	Landscape      bool
	Columns        int
	ColumnSpacing  int
	HeaderDistance int
	FooterDistance int
}

// TextWidth returns width available to text across all columns.
func (g Geometry) TextWidth() int {
	return max(g.Width-g.MarginLeft-g.MarginRight-g.Gutter, 0)
}

// ColumnWidth returns width of a single text column.
func (g Geometry) ColumnWidth() int {
	if g.Columns <= 1 {
		return g.TextWidth()
	}
	return max((g.TextWidth()-g.ColumnSpacing*(g.Columns-1))/g.Columns, 0)
}

// Document is the in-progress document state.
type Document struct {
	Charset    Charset
	CodePage   int
	Info       Info
	Page       PageSetup
	View       ViewSettings
	Typography Typography
	Variables  map[string]string

	Colors    *registry.Registry[Color]
	Fonts     *registry.Registry[Font]
	Styles    *registry.Registry[Style]
	Lists     *registry.Registry[*List]
	Bookmarks *registry.Registry[string]
	Comments  *registry.Registry[*Comment]

	Sections []*Section
}

// Default page setup is US Letter with one inch margins.
const (
	DefaultPageWidth  = 12240
	DefaultPageHeight = 15840
	DefaultMargin     = 1440
	DefaultTab        = 720
	DefaultCodePage   = 1252
)

// NewDocument creates empty document with default settings.
func NewDocument() *Document {
	return &Document{
		Charset:  CharsetAnsi,
		CodePage: DefaultCodePage,
		Page: PageSetup{
			Width:        units.Twips(DefaultPageWidth),
			Height:       units.Twips(DefaultPageHeight),
			MarginLeft:   units.Twips(DefaultMargin),
			MarginRight:  units.Twips(DefaultMargin),
			MarginTop:    units.Twips(DefaultMargin),
			MarginBottom: units.Twips(DefaultMargin),
			Footnotes:    FootnotePolicy{Start: 1},
			Endnotes:     EndnotePolicy{Start: 1, Format: NumberFormatLowerRoman},
		},
		View:       ViewSettings{Kind: ViewKindPageLayout, Scale: 100},
		Typography: Typography{DefaultTab: units.Twips(DefaultTab), Language: "en-US", WidowControl: true},
		Variables:  make(map[string]string),
		Colors:     registry.New("color", "c", registry.Comparable[Color]),
		Fonts:      registry.New("font", "f", registry.Comparable[Font]),
		Styles:     registry.New("style", "s", registry.Comparable[Style]),
		Lists:      registry.New("list", "l", registry.Distinct[*List]),
		Bookmarks:  registry.New("bookmark", "b", registry.Comparable[string]),
		Comments:   registry.New("comment", "cm", registry.Distinct[*Comment]),
	}
}

func (d *Document) SetCharset(cs Charset, codePage int) {
	d.Charset, d.CodePage = cs, codePage
}

func (d *Document) SetInfo(info Info) {
	d.Info = info
}

func (d *Document) SetPage(page PageSetup) {
	d.Page = page
}

func (d *Document) SetView(view ViewSettings) {
	d.View = view
}

func (d *Document) SetTypography(typ Typography) {
	d.Typography = typ
}

// SetVariable registers or overwrites named variable.
func (d *Document) SetVariable(name, value string) {
	if d.Variables == nil {
		d.Variables = make(map[string]string)
	}
	d.Variables[name] = value
}

func (d *Document) AddColor(c Color, alias string) string {
	return d.Colors.Register(c, alias)
}

func (d *Document) AddFont(f Font, alias string) string {
	return d.Fonts.Register(f, alias)
}

func (d *Document) AddStyle(s Style, alias string) string {
	return d.Styles.Register(s, alias)
}

func (d *Document) AddList(l *List, alias string) string {
	return d.Lists.Register(l, alias)
}

// AddBookmark registers bookmark name, the name itself is the alias.
func (d *Document) AddBookmark(name string) string {
	return d.Bookmarks.Register(name, name)
}

// BookmarkName returns registered bookmark name of alias, alias itself when
// it is unknown.
func (d *Document) BookmarkName(alias string) string {
	if e, err := d.Bookmarks.Get(alias); err == nil {
		return e.Value
	}
	return alias
}

func (d *Document) AddComment(c *Comment, alias string) string {
	return d.Comments.Register(c, alias)
}

// AddSection appends new section and returns it.
func (d *Document) AddSection(format SectionFormat) *Section {
	s := &Section{Format: format}
	d.Sections = append(d.Sections, s)
	return s
}

// Geometry returns effective page geometry for section formatting f, unset
// fields are taken from the document page setup. Landscape orientation swaps
// width and height when needed so that width is the longer side.
func (d *Document) Geometry(f SectionFormat) Geometry {
	g := Geometry{
		Width:          f.Width.Or(d.Page.Width).Twips(),
		Height:         f.Height.Or(d.Page.Height).Twips(),
		MarginLeft:     f.MarginLeft.Or(d.Page.MarginLeft).Twips(),
		MarginRight:    f.MarginRight.Or(d.Page.MarginRight).Twips(),
		MarginTop:      f.MarginTop.Or(d.Page.MarginTop).Twips(),
		MarginBottom:   f.MarginBottom.Or(d.Page.MarginBottom).Twips(),
		Gutter:         f.Gutter.Or(d.Page.Gutter).Twips(),
		Landscape:      f.Landscape.Or(d.Page.Landscape),
		Columns:        f.ColumnCount(),
		ColumnSpacing:  f.ColumnSpacing.Or(units.Twips(DefaultTab)).Twips(),
		HeaderDistance: f.HeaderDistance.Or(units.Twips(DefaultTab)).Twips(),
		FooterDistance: f.FooterDistance.Or(units.Twips(DefaultTab)).Twips(),
	}
	if g.Landscape && g.Width < g.Height {
		g.Width, g.Height = g.Height, g.Width
	}
	return g
}
