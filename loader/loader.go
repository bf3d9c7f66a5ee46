// Package loader builds document model out of YAML document description.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"rtdoc/css"
	"rtdoc/model"
	"rtdoc/utils/images"
)

// ErrShape is wrapped by errors about element or item descriptions holding
// nothing or more than one thing.
var ErrShape = errors.New("malformed description")

// LoadFile reads description from path. Relative file references inside are
// resolved against the directory of path. Optional stylesheet is imported
// before anything else, so description styles may override its rules.
func LoadFile(path string, stylesheet []byte, log *zap.Logger) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read document description: %w", err)
	}
	return Load(data, filepath.Dir(path), stylesheet, log)
}

// Load decodes description data, dir is used to resolve relative file
// references.
func Load(data []byte, dir string, stylesheet []byte, log *zap.Logger) (*model.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &loader{doc: model.NewDocument(), dir: dir, log: log.Named("loader")}

	desc := Description{
		Page:       l.doc.Page,
		View:       l.doc.View,
		Typography: l.doc.Typography,
	}
	// Only fields we know are accepted, typos must not be silently ignored
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode document description: %w", err)
	}

	if len(stylesheet) > 0 {
		l.importStylesheet(stylesheet, "configuration")
	}
	if err := l.build(&desc); err != nil {
		return nil, err
	}
	return l.doc, nil
}

type loader struct {
	doc *model.Document
	dir string
	log *zap.Logger
}

func (l *loader) importStylesheet(data []byte, source string) {
	sheet := css.NewParser(l.log).Parse(data, source)
	aliases := css.Import(l.doc, sheet, l.log)
	l.log.Debug("Stylesheet imported", zap.String("source", source), zap.Strings("styles", aliases))
}

func (l *loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.dir, filepath.FromSlash(name))
}

func (l *loader) build(desc *Description) error {
	doc := l.doc

	if cs, ok := desc.Charset.Get(); ok {
		doc.SetCharset(cs, doc.CodePage)
	}
	if desc.CodePage != 0 {
		doc.SetCharset(doc.Charset, desc.CodePage)
	}
	doc.SetInfo(desc.Info)
	doc.SetPage(desc.Page)
	doc.SetView(desc.View)
	doc.SetTypography(desc.Typography)
	for name, value := range desc.Variables {
		doc.SetVariable(name, value)
	}

	if desc.Stylesheet != "" {
		data, err := os.ReadFile(l.path(desc.Stylesheet))
		if err != nil {
			return fmt.Errorf("unable to read stylesheet: %w", err)
		}
		l.importStylesheet(data, desc.Stylesheet)
	}

	for _, c := range desc.Colors {
		doc.AddColor(c.Value, c.Alias)
	}
	for _, f := range desc.Fonts {
		doc.AddFont(f.Font, f.Alias)
	}
	for _, s := range desc.Styles {
		doc.AddStyle(s.Style, s.Alias)
	}
	for _, ld := range desc.Lists {
		doc.AddList(ld.List.Clone(), ld.Alias)
	}
	for _, b := range desc.Bookmarks {
		name := b.Name
		if name == "" {
			name = BookmarkName(b.Alias)
		}
		doc.Bookmarks.Register(name, b.Alias)
	}
	for i, cd := range desc.Comments {
		c := &model.Comment{Author: cd.Author, Initials: cd.Initials, Time: cd.Time, Scope: cd.Scope}
		for j := range cd.Body {
			p, err := l.paragraph(fmt.Sprintf("comments[%d].body[%d]", i, j), &cd.Body[j])
			if err != nil {
				return err
			}
			c.Body = append(c.Body, p)
		}
		doc.AddComment(c, cd.Alias)
	}

	for i := range desc.Sections {
		if err := l.section(fmt.Sprintf("sections[%d]", i), &desc.Sections[i]); err != nil {
			return err
		}
	}
	l.log.Debug("Document description loaded", zap.Int("sections", len(doc.Sections)))
	return nil
}

// BookmarkName suggests bookmark name for alias: slug with underscores,
// no longer than 40 characters.
func BookmarkName(alias string) string {
	name := strings.ReplaceAll(slug.Make(alias), "-", "_")
	if r := []rune(name); len(r) > 40 {
		name = string(r[:40])
	}
	if name == "" {
		name = "_bookmark"
	}
	return name
}

func (l *loader) section(path string, sd *sectionDesc) error {
	s := l.doc.AddSection(sd.Format)
	s.Style = sd.Style

	var err error
	if s.Header, err = l.headerFooter(path+".header", &sd.Header); err != nil {
		return err
	}
	if s.Footer, err = l.headerFooter(path+".footer", &sd.Footer); err != nil {
		return err
	}
	body, err := l.elements(path+".body", sd.Body)
	if err != nil {
		return err
	}
	s.Add(body...)
	return nil
}

func (l *loader) headerFooter(path string, hd *headerFooterDesc) (model.HeaderFooter, error) {
	var (
		hf  model.HeaderFooter
		err error
	)
	if hf.First, err = l.elements(path+".first", hd.First); err != nil {
		return hf, err
	}
	if hf.Odd, err = l.elements(path+".odd", hd.Odd); err != nil {
		return hf, err
	}
	if hf.Even, err = l.elements(path+".even", hd.Even); err != nil {
		return hf, err
	}
	return hf, nil
}

func (l *loader) elements(path string, descs []elementDesc) ([]model.Element, error) {
	var out []model.Element
	for i := range descs {
		e, err := l.element(fmt.Sprintf("%s[%d]", path, i), &descs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (l *loader) element(path string, ed *elementDesc) (model.Element, error) {
	set := 0
	for _, b := range []bool{ed.Paragraph != nil, ed.Table != nil, ed.List != nil, ed.Container != nil, ed.ColumnBreak} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: element must describe exactly one of paragraph, table, list, container, column_break: %w", path, ErrShape)
	}

	switch {
	case ed.Paragraph != nil:
		return l.paragraph(path+".paragraph", ed.Paragraph)
	case ed.Table != nil:
		return l.table(path+".table", ed.Table)
	case ed.List != nil:
		return l.listBlock(path+".list", ed.List)
	case ed.Container != nil:
		content, err := l.elements(path+".container", ed.Container)
		if err != nil {
			return nil, err
		}
		return &model.Container{Content: content}, nil
	default:
		return model.ColumnBreak{}, nil
	}
}

func (l *loader) paragraph(path string, pd *paragraphDesc) (*model.Paragraph, error) {
	p := &model.Paragraph{Format: pd.ParagraphFormat}
	runs, err := l.runs(path, pd.Text, pd.Runs)
	if err != nil {
		return nil, err
	}
	return p.Add(runs...), nil
}

func (l *loader) runs(path, text string, descs []runDesc) ([]*model.Run, error) {
	var out []*model.Run
	if text != "" {
		out = append(out, model.NewRun(model.CharFormat{}, text))
	}
	for i := range descs {
		r, err := l.run(fmt.Sprintf("%s.runs[%d]", path, i), &descs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (l *loader) run(path string, rd *runDesc) (*model.Run, error) {
	r := &model.Run{
		Style:    rd.Style,
		Format:   rd.Char,
		Bookmark: rd.Bookmark,
		Comment:  rd.Comment,
	}
	if rd.Link != nil {
		r.Link = &model.Hyperlink{Kind: rd.Link.Kind, Target: rd.Link.Target, Tooltip: rd.Link.Tooltip}
	}
	if rd.Bookmark != "" && !l.doc.Bookmarks.Has(rd.Bookmark) {
		l.doc.Bookmarks.Register(BookmarkName(rd.Bookmark), rd.Bookmark)
	}
	if rd.Text != "" {
		r.Items = append(r.Items, model.Text(rd.Text))
	}
	for i := range rd.Items {
		it, err := l.item(fmt.Sprintf("%s.items[%d]", path, i), &rd.Items[i])
		if err != nil {
			return nil, err
		}
		r.Items = append(r.Items, it)
	}
	return r, nil
}

func (l *loader) item(path string, id *itemDesc) (model.Inline, error) {
	set := 0
	for _, b := range []bool{id.Text != nil, id.Special != nil, id.Footnote != nil, id.Endnote != nil, id.Picture != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: item must describe exactly one of text, special, footnote, endnote, picture: %w", path, ErrShape)
	}

	switch {
	case id.Text != nil:
		return model.Text(*id.Text), nil
	case id.Special != nil:
		return model.Special{Kind: *id.Special}, nil
	case id.Footnote != nil:
		return l.note(path+".footnote", id.Footnote, false)
	case id.Endnote != nil:
		return l.note(path+".endnote", id.Endnote, true)
	default:
		return l.picture(path+".picture", id.Picture)
	}
}

func (l *loader) note(path string, nd *noteDesc, endnote bool) (*model.Footnote, error) {
	body, err := l.paragraph(path+".body", &nd.Body)
	if err != nil {
		return nil, err
	}
	return &model.Footnote{Endnote: endnote, Mark: nd.Mark, Body: body}, nil
}

func (l *loader) picture(path string, pd *pictureDesc) (*model.Picture, error) {
	if pd.File == "" {
		return nil, fmt.Errorf("%s: picture file is required: %w", path, ErrShape)
	}
	data, err := os.ReadFile(l.path(pd.File))
	if err != nil {
		return nil, fmt.Errorf("%s: unable to read picture: %w", path, err)
	}
	info, err := images.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("%s: unsupported picture %s: %w", path, pd.File, err)
	}
	l.log.Debug("Picture loaded", zap.String("file", pd.File), zap.String("format", string(info.Format)), zap.Int("width", info.Width), zap.Int("height", info.Height))

	return &model.Picture{
		Data:        data,
		Width:       pd.Width,
		Height:      pd.Height,
		CropLeft:    pd.CropLeft,
		CropTop:     pd.CropTop,
		CropRight:   pd.CropRight,
		CropBottom:  pd.CropBottom,
		ScaleX:      pd.ScaleX,
		ScaleY:      pd.ScaleY,
		Description: pd.Description,
	}, nil
}

func (l *loader) table(path string, td *tableDesc) (*model.Table, error) {
	t := &model.Table{Format: td.Format}
	for _, c := range td.Columns {
		t.Columns = append(t.Columns, model.Column{Width: c.Width, Weight: c.Weight})
	}
	for i, rd := range td.Rows {
		row := &model.Row{Format: rd.Format}
		for j := range rd.Cells {
			cd := &rd.Cells[j]
			cpath := fmt.Sprintf("%s.rows[%d].cells[%d]", path, i, j)
			cell := &model.Cell{Format: cd.Format}
			if cd.Text != "" {
				cell.Content = append(cell.Content, model.NewParagraph(model.ParagraphFormat{}, cd.Text))
			}
			content, err := l.elements(cpath+".content", cd.Content)
			if err != nil {
				return nil, err
			}
			cell.Content = append(cell.Content, content...)
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (l *loader) listBlock(path string, bd *listBlockDesc) (*model.Container, error) {
	c := &model.Container{}
	if err := l.listItems(path, bd, bd.Items, 0, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (l *loader) listItems(path string, bd *listBlockDesc, items []listItemDesc, level int, c *model.Container) error {
	for i := range items {
		it := &items[i]
		ipath := fmt.Sprintf("%s.items[%d]", path, i)
		p := &model.Paragraph{Format: model.ParagraphFormat{
			Style: bd.Style,
			List:  model.Some(model.ListRef{List: bd.List, Level: level}),
		}}
		runs, err := l.runs(ipath, it.Text, it.Runs)
		if err != nil {
			return err
		}
		c.Content = append(c.Content, p.Add(runs...))
		if err := l.listItems(ipath, bd, it.Items, level+1, c); err != nil {
			return err
		}
	}
	return nil
}
