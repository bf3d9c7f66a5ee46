package docx

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/maruel/natural"

	"rtdoc/model"
)

var viewValues = map[model.ViewKind]string{
	model.ViewKindPageLayout: "print",
	model.ViewKindOutline:    "outline",
	model.ViewKindMaster:     "masterPages",
	model.ViewKindNormal:     "normal",
	model.ViewKindWeb:        "web",
}

var numberFormatValues = map[model.NumberFormat]string{
	model.NumberFormatArabic:      "decimal",
	model.NumberFormatUpperRoman:  "upperRoman",
	model.NumberFormatLowerRoman:  "lowerRoman",
	model.NumberFormatUpperLetter: "upperLetter",
	model.NumberFormatLowerLetter: "lowerLetter",
	model.NumberFormatOrdinal:     "ordinal",
	model.NumberFormatCardinal:    "cardinalText",
	model.NumberFormatOrdinalText: "ordinalText",
	model.NumberFormatBullet:      "bullet",
	model.NumberFormatNone:        "none",
}

var noteRestartValues = map[model.NoteRestart]string{
	model.NoteRestartContinuous:  "continuous",
	model.NoteRestartEachSection: "eachSect",
	model.NoteRestartEachPage:    "eachPage",
}

func (r *renderer) settingsPart() *xmlPart {
	p := newContentPart("word/settings.xml", ctSettings, "w:settings")
	doc := r.doc

	if v, ok := viewValues[doc.View.Kind]; ok {
		val(p.root, "view", v)
	}
	zoom := w(p.root, "zoom")
	zoom.CreateAttr("w:percent", strconv.Itoa(max(doc.View.Scale, 10)))
	switch doc.View.Zoom {
	case model.ZoomKindFullPage:
		zoom.CreateAttr("w:val", "fullPage")
	case model.ZoomKindBestFit:
		zoom.CreateAttr("w:val", "bestFit")
	}
	if doc.Page.MirrorMargins {
		w(p.root, "mirrorMargins")
	}

	typ := doc.Typography
	valInt(p.root, "defaultTabStop", typ.DefaultTab.Twips())
	if typ.AutoHyphenation {
		w(p.root, "autoHyphenation")
	}
	if typ.ConsecutiveHyphens > 0 {
		valInt(p.root, "consecutiveHyphenLimit", typ.ConsecutiveHyphens)
	}
	if v, ok := typ.HyphenationZone.Get(); ok {
		valInt(p.root, "hyphenationZone", v.Twips())
	}
	if typ.AutoHyphenation && !typ.HyphenateCaps {
		w(p.root, "doNotHyphenateCaps")
	}
	if doc.Page.FacingPages || r.evenHeaders {
		w(p.root, "evenAndOddHeaders")
	}

	fp := w(p.root, "footnotePr")
	if doc.Page.Footnotes.Position == model.FootnotePositionBeneathText {
		val(fp, "pos", "beneathText")
	} else {
		val(fp, "pos", "pageBottom")
	}
	val(fp, "numFmt", numberFormatValues[doc.Page.Footnotes.Format])
	valInt(fp, "numStart", max(doc.Page.Footnotes.Start, 1))
	val(fp, "numRestart", noteRestartValues[doc.Page.Footnotes.Restart])
	if r.footnotes != nil {
		separatorRefs(fp, "footnote")
	}

	ep := w(p.root, "endnotePr")
	if doc.Page.Endnotes.Position == model.EndnotePositionSectionEnd {
		val(ep, "pos", "sectEnd")
	} else {
		val(ep, "pos", "docEnd")
	}
	val(ep, "numFmt", numberFormatValues[doc.Page.Endnotes.Format])
	valInt(ep, "numStart", max(doc.Page.Endnotes.Start, 1))
	if r.endnotes != nil {
		separatorRefs(ep, "endnote")
	}

	compat := w(p.root, "compat")
	setting := w(compat, "compatSetting")
	setting.CreateAttr("w:name", "compatibilityMode")
	setting.CreateAttr("w:uri", "http://schemas.microsoft.com/office/word")
	setting.CreateAttr("w:val", "15")

	if len(doc.Variables) > 0 {
		names := make([]string, 0, len(doc.Variables))
		for name := range doc.Variables {
			names = append(names, name)
		}
		sort.Sort(natural.StringSlice(names))

		vars := w(p.root, "docVars")
		for _, name := range names {
			v := w(vars, "docVar")
			v.CreateAttr("w:name", name)
			v.CreateAttr("w:val", doc.Variables[name])
		}
	}
	if typ.Language != "" {
		val(p.root, "themeFontLang", languageTag(typ.Language))
	}
	return p
}

func separatorRefs(parent *etree.Element, tag string) {
	for _, id := range []string{"-1", "0"} {
		w(parent, tag).CreateAttr("w:id", id)
	}
}

var familyValues = map[model.FontFamily]string{
	model.FontFamilyNil:    "auto",
	model.FontFamilyRoman:  "roman",
	model.FontFamilySwiss:  "swiss",
	model.FontFamilyModern: "modern",
	model.FontFamilyScript: "script",
	model.FontFamilyDecor:  "decorative",
	model.FontFamilyTech:   "auto",
	model.FontFamilyBidi:   "auto",
}

var pitchValues = map[model.Pitch]string{
	model.PitchDefault:  "default",
	model.PitchFixed:    "fixed",
	model.PitchVariable: "variable",
}

func (r *renderer) fontTablePart() *xmlPart {
	p := newContentPart("word/fontTable.xml", ctFontTable, "w:fonts")
	seen := make(map[string]bool)
	for _, e := range r.doc.Fonts.Entries() {
		f := e.Value
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true

		el := w(p.root, "font")
		el.CreateAttr("w:name", f.Name)
		if f.AltName != "" {
			val(el, "altName", f.AltName)
		}
		val(el, "charset", fmt.Sprintf("%02X", f.Charset))
		val(el, "family", familyValues[f.Family])
		val(el, "pitch", pitchValues[f.Pitch])
	}
	return p
}
