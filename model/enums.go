package model

// Document character set.
// ENUM(ansi, mac, pc, pca)
type Charset int

// Document view mode.
// ENUM(none, pageLayout, outline, master, normal, web)
type ViewKind int

// Zoom mode of the document view.
// ENUM(none, fullPage, bestFit)
type ZoomKind int

// Placement of footnotes.
// ENUM(pageBottom, beneathText)
type FootnotePosition int

// Placement of endnotes.
// ENUM(documentEnd, sectionEnd)
type EndnotePosition int

// Restart policy of note numbering.
// ENUM(continuous, eachSection, eachPage)
type NoteRestart int

// Numbering format of list levels, notes and page numbers.
// ENUM(arabic, upperRoman, lowerRoman, upperLetter, lowerLetter, ordinal, cardinal, ordinalText, bullet, none)
type NumberFormat int

// Horizontal alignment of paragraphs, tables and list numbers.
// ENUM(left, center, right, justify, distribute)
type Align int

// Line spacing rule.
// ENUM(auto, atLeast, exact)
type LineRule int

// Underline style.
// ENUM(none, single, double, dotted, dash, word, wave, thick)
type Underline int

// Vertical text position.
// ENUM(baseline, superscript, subscript)
type VertPos int

// Border line style.
// ENUM(none, single, double, dotted, dashed, thick)
type BorderStyle int

// Vertical alignment of cell content.
// ENUM(top, center, bottom)
type VAlign int

// Cell merge state.
// ENUM(none, first, next)
type Span int

// Row height rule.
// ENUM(atLeast, exact)
type HeightRule int

// Kind of style.
// ENUM(paragraph, character, section)
type StyleKind int

// List template type.
// ENUM(hybrid, simple, multi)
type ListType int

// Character following list number.
// ENUM(tab, space, nothing)
type Follow int

// Section break kind.
// ENUM(page, none, column, even, odd)
type SectionBreak int

// Special inline content.
// ENUM(pageBreak, lineBreak, columnBreak, tab, nonBreakingSpace, nonBreakingHyphen, optionalHyphen, pageNumber, totalPages, date, time)
type SpecialKind int

// Hyperlink target kind.
// ENUM(bookmark, url, email)
type LinkKind int

// Part of the run highlighted by a comment.
// ENUM(run, word)
type CommentScope int

// IsField reports whether special content is rendered as a computed field.
func (k SpecialKind) IsField() bool {
	return k == SpecialKindPageNumber || k == SpecialKindTotalPages || k == SpecialKindDate || k == SpecialKindTime
}

// Font family class.
// ENUM(nil, roman, swiss, modern, script, decor, tech, bidi)
type FontFamily int

// Font pitch.
// ENUM(default, fixed, variable)
type Pitch int
