package loader

import (
	"time"

	"rtdoc/model"
	"rtdoc/units"
)

// Description is the YAML document description. Resource tables are
// sequences so registration order (and therefore indices) follows the file.
// Page, view and typography are decoded over document defaults.
type Description struct {
	Charset    model.Opt[model.Charset] `yaml:"charset"`
	CodePage   int                      `yaml:"code_page"`
	Stylesheet string                   `yaml:"stylesheet"`
	Info       model.Info               `yaml:"info"`
	Page       model.PageSetup          `yaml:"page"`
	View       model.ViewSettings       `yaml:"view"`
	Typography model.Typography         `yaml:"typography"`
	Variables  map[string]string        `yaml:"variables"`
	Colors     []colorDesc              `yaml:"colors"`
	Fonts      []fontDesc               `yaml:"fonts"`
	Styles     []styleDesc              `yaml:"styles"`
	Lists      []listDesc               `yaml:"lists"`
	Bookmarks  []bookmarkDesc           `yaml:"bookmarks"`
	Comments   []commentDesc            `yaml:"comments"`
	Sections   []sectionDesc            `yaml:"sections"`
}

type colorDesc struct {
	Alias string      `yaml:"alias"`
	Value model.Color `yaml:"value"`
}

type fontDesc struct {
	Alias      string `yaml:"alias"`
	model.Font `yaml:",inline"`
}

type styleDesc struct {
	Alias       string `yaml:"alias"`
	model.Style `yaml:",inline"`
}

type listDesc struct {
	Alias      string `yaml:"alias"`
	model.List `yaml:",inline"`
}

// bookmarkDesc registers bookmark under alias. Name defaults to a slug made
// of the alias.
type bookmarkDesc struct {
	Alias string `yaml:"alias"`
	Name  string `yaml:"name"`
}

type commentDesc struct {
	Alias    string             `yaml:"alias"`
	Author   string             `yaml:"author"`
	Initials string             `yaml:"initials"`
	Time     time.Time          `yaml:"time"`
	Scope    model.CommentScope `yaml:"scope"`
	Body     []paragraphDesc    `yaml:"body"`
}

type sectionDesc struct {
	Style  string              `yaml:"style"`
	Format model.SectionFormat `yaml:"format"`
	Header headerFooterDesc    `yaml:"header"`
	Footer headerFooterDesc    `yaml:"footer"`
	Body   []elementDesc       `yaml:"body"`
}

type headerFooterDesc struct {
	First []elementDesc `yaml:"first"`
	Odd   []elementDesc `yaml:"odd"`
	Even  []elementDesc `yaml:"even"`
}

// elementDesc holds exactly one block element.
type elementDesc struct {
	Paragraph   *paragraphDesc `yaml:"paragraph"`
	Table       *tableDesc     `yaml:"table"`
	List        *listBlockDesc `yaml:"list"`
	Container   []elementDesc  `yaml:"container"`
	ColumnBreak bool           `yaml:"column_break"`
}

// paragraphDesc is a paragraph, Text is a shorthand for a single plain run
// placed before Runs.
type paragraphDesc struct {
	model.ParagraphFormat `yaml:",inline"`

	Text string    `yaml:"text"`
	Runs []runDesc `yaml:"runs"`
}

type runDesc struct {
	Style    string           `yaml:"style"`
	Char     model.CharFormat `yaml:"char"`
	Bookmark string           `yaml:"bookmark"`
	Link     *linkDesc        `yaml:"link"`
	Comment  string           `yaml:"comment"`
	Text     string           `yaml:"text"`
	Items    []itemDesc       `yaml:"items"`
}

type linkDesc struct {
	Kind    model.LinkKind `yaml:"kind"`
	Target  string         `yaml:"target"`
	Tooltip string         `yaml:"tooltip"`
}

// itemDesc holds exactly one inline item.
type itemDesc struct {
	Text     *string            `yaml:"text"`
	Special  *model.SpecialKind `yaml:"special"`
	Footnote *noteDesc          `yaml:"footnote"`
	Endnote  *noteDesc          `yaml:"endnote"`
	Picture  *pictureDesc       `yaml:"picture"`
}

type noteDesc struct {
	Mark string        `yaml:"mark"`
	Body paragraphDesc `yaml:"body"`
}

// pictureDesc references image file relative to the description.
type pictureDesc struct {
	File        string                `yaml:"file"`
	Width       model.Opt[units.Size] `yaml:"width"`
	Height      model.Opt[units.Size] `yaml:"height"`
	CropLeft    units.Size            `yaml:"crop_left"`
	CropTop     units.Size            `yaml:"crop_top"`
	CropRight   units.Size            `yaml:"crop_right"`
	CropBottom  units.Size            `yaml:"crop_bottom"`
	ScaleX      model.Opt[int]        `yaml:"scale_x"`
	ScaleY      model.Opt[int]        `yaml:"scale_y"`
	Description string                `yaml:"description"`
}

type tableDesc struct {
	Format  model.TableFormat `yaml:"format"`
	Columns []columnDesc      `yaml:"columns"`
	Rows    []rowDesc         `yaml:"rows"`
}

type columnDesc struct {
	Width  model.Opt[units.Size] `yaml:"width"`
	Weight float64               `yaml:"weight"`
}

type rowDesc struct {
	Format model.RowFormat `yaml:"format"`
	Cells  []cellDesc      `yaml:"cells"`
}

// cellDesc is a table cell, Text is a shorthand for a single paragraph.
type cellDesc struct {
	Format  model.CellFormat `yaml:"format"`
	Text    string           `yaml:"text"`
	Content []elementDesc    `yaml:"content"`
}

// listBlockDesc turns items into paragraphs attached to a registered list,
// nested items go one level deeper.
type listBlockDesc struct {
	List  string         `yaml:"list"`
	Style string         `yaml:"style"`
	Items []listItemDesc `yaml:"items"`
}

type listItemDesc struct {
	Text  string         `yaml:"text"`
	Runs  []runDesc      `yaml:"runs"`
	Items []listItemDesc `yaml:"items"`
}
