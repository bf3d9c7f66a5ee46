// Package css reads simple stylesheets and turns their rules into document
// styles. Only simple selectors and a subset of text properties are
// understood, the rest is reported as warnings.
package css

import (
	"bytes"
	"errors"
	"io"
	"maps"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into rules.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. The optional source identifies
// what is being parsed for debug logging.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			props := p.parseDeclarations(parser)
			for _, s := range selectors {
				sel, ok := p.parseSelector(s, sheet)
				if !ok {
					continue
				}
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Properties: maps.Clone(props)})
			}
		}
	}
}

func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func (p *Parser) parseSelector(s string, sheet *Stylesheet) (Selector, bool) {
	sel := Selector{Raw: s}
	if strings.ContainsAny(s, " \t\n+~>[:*#") {
		sheet.Warnings = append(sheet.Warnings, "unsupported selector: "+s)
		p.log.Debug("Skipping selector", zap.String("selector", s))
		return sel, false
	}
	element, class, found := strings.Cut(s, ".")
	sel.Element = strings.ToLower(element)
	if found {
		if class == "" || strings.Contains(class, ".") {
			sheet.Warnings = append(sheet.Warnings, "unsupported selector: "+s)
			return sel, false
		}
		sel.Class = class
	}
	return sel, sel.IsSimple()
}

// parseDeclarations parses property declarations until the end of ruleset.
// Later declarations of the same property win.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = p.parsePropertyValue(values)
			}
		}
	}
}

func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	var (
		raw  strings.Builder
		item strings.Builder
		list []string
	)
	flush := func() {
		if s := strings.TrimSpace(item.String()); s != "" {
			list = append(list, unquote(s))
		}
		item.Reset()
	}
	significant := tokens[:0:0]
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if raw.Len() > 0 {
				raw.WriteByte(' ')
				item.WriteByte(' ')
			}
			continue
		case css.CommaToken:
			flush()
		default:
			item.Write(t.Data)
		}
		raw.Write(t.Data)
		significant = append(significant, t)
	}
	flush()

	val := Value{Raw: strings.TrimSpace(raw.String()), List: list}
	if len(significant) != 1 {
		val.Keyword = strings.ToLower(val.Raw)
		return val
	}

	t := significant[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Value, val.Unit = parseDimension(string(t.Data))
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	case css.HashToken:
		val.Keyword = strings.ToLower(string(t.Data))
	default:
		val.Keyword = strings.ToLower(val.Raw)
	}
	return val
}

// parseDimension splits dimension token into number and unit.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
