package rtf

import (
	"strconv"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// DOS code pages have no web labels.
var oemCodePages = map[int]encoding.Encoding{
	437: charmap.CodePage437,
	850: charmap.CodePage850,
	852: charmap.CodePage852,
	855: charmap.CodePage855,
	858: charmap.CodePage858,
	860: charmap.CodePage860,
	862: charmap.CodePage862,
	863: charmap.CodePage863,
	865: charmap.CodePage865,
	866: charmap.CodePage866,
}

// codePageEncoding returns single byte encoding for the code page or nil
// when the code page is unknown or multi byte.
func codePageEncoding(cp int) encoding.Encoding {
	if enc, ok := oemCodePages[cp]; ok {
		return enc
	}
	var label string
	switch {
	case cp == 874 || (cp >= 1250 && cp <= 1258):
		label = "windows-" + strconv.Itoa(cp)
	case cp == 10000:
		label = "macintosh"
	case cp == 20866:
		label = "koi8-r"
	case cp == 21866:
		label = "koi8-u"
	case cp >= 28592 && cp <= 28606:
		label = "iso-8859-" + strconv.Itoa(cp-28590)
	default:
		return nil
	}
	enc, _ := charset.Lookup(label)
	return enc
}

// Windows language identifiers of common languages. Tags not listed fall
// back to the closest match, then to English (US).
var lcids = []struct {
	tag  language.Tag
	lcid int
}{
	{language.AmericanEnglish, 1033},
	{language.BritishEnglish, 2057},
	{language.German, 1031},
	{language.French, 1036},
	{language.Spanish, 3082},
	{language.Italian, 1040},
	{language.Portuguese, 2070},
	{language.BrazilianPortuguese, 1046},
	{language.Dutch, 1043},
	{language.Russian, 1049},
	{language.Ukrainian, 1058},
	{language.Polish, 1045},
	{language.Czech, 1029},
	{language.Swedish, 1053},
	{language.Danish, 1030},
	{language.Norwegian, 1044},
	{language.Finnish, 1035},
	{language.Greek, 1032},
	{language.Turkish, 1055},
	{language.Hungarian, 1038},
	{language.Hebrew, 1037},
	{language.Arabic, 1025},
	{language.Japanese, 1041},
	{language.Korean, 1042},
	{language.SimplifiedChinese, 2052},
	{language.TraditionalChinese, 1028},
}

var lcidMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(lcids))
	for i, l := range lcids {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// LCID returns Windows language identifier for BCP 47 tag.
func LCID(tag string) int {
	t, err := language.Parse(tag)
	if err != nil {
		return lcids[0].lcid
	}
	_, idx, conf := lcidMatcher.Match(t)
	if conf == language.No {
		return lcids[0].lcid
	}
	return lcids[idx].lcid
}
