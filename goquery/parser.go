// Package goquery provides an HTML structural extractor built on goquery.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docspan"
	"golang.org/x/net/html"
)

// BoilerplateAttr is set to "true" on spans of elements matched by the
// parser's boilerplate selectors.
const BoilerplateAttr = "boilerplate"

// DefaultBoilerplate selects page chrome that rarely holds document content.
var DefaultBoilerplate = []string{
	"nav",
	"aside",
	"body > header",
	"body > footer",
	"[role=navigation]",
	"[role=banner]",
	"[role=contentinfo]",
}

var _ docspan.Parser = (*Parser)(nil)

// Parser converts HTML into a document whose text is the rendered page text
// and whose spans are the elements of the body. Span kinds are tag names and
// depths are element nesting levels below <body>.
type Parser struct {
	// Boilerplate lists CSS selectors whose matches get BoilerplateAttr.
	Boilerplate []string
}

// NewParser creates a new Parser using DefaultBoilerplate.
func NewParser() *Parser {
	return &Parser{Boilerplate: DefaultBoilerplate}
}

// Parse parses HTML and returns the extracted document.
func (p *Parser) Parse(content string) (*docspan.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, docspan.Errorf(docspan.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript, template, head").Remove()

	marked := make(map[*html.Node]bool)
	for _, sel := range p.Boilerplate {
		for _, n := range doc.Find(sel).Nodes {
			marked[n] = true
		}
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return &docspan.Document{}, nil
	}

	w := &textWriter{marked: marked}
	w.element(body.Nodes[0], 0)

	text := strings.TrimRight(string(w.buf), " \n")
	for i := range w.spans {
		w.spans[i].End = min(w.spans[i].End, len(text))
		w.spans[i].Begin = min(w.spans[i].Begin, w.spans[i].End)
	}
	return &docspan.Document{Text: text, Spans: w.spans}, nil
}

// blockElements start on their own line in the extracted text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "summary": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// textWriter accumulates page text and the element spans indexing it.
type textWriter struct {
	buf          []byte
	spans        []docspan.Span
	marked       map[*html.Node]bool
	breakPending bool
}

func (w *textWriter) last() byte {
	if len(w.buf) == 0 {
		return 0
	}
	return w.buf[len(w.buf)-1]
}

// flushBreak ends the current line if a break is pending or forced. A
// trailing separator space becomes the newline so offsets stay put.
func (w *textWriter) flushBreak(force bool) {
	pending := w.breakPending || force
	w.breakPending = false
	if !pending || len(w.buf) == 0 {
		return
	}
	switch w.last() {
	case '\n':
	case ' ':
		w.buf[len(w.buf)-1] = '\n'
	default:
		w.buf = append(w.buf, '\n')
	}
}

func (w *textWriter) text(data string) {
	collapsed := strings.Join(strings.Fields(data), " ")
	if collapsed == "" {
		if data != "" && len(w.buf) > 0 && w.last() != ' ' && w.last() != '\n' {
			w.buf = append(w.buf, ' ')
		}
		return
	}
	w.flushBreak(false)
	if isSpace(data[0]) && len(w.buf) > 0 && w.last() != ' ' && w.last() != '\n' {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, collapsed...)
	if isSpace(data[len(data)-1]) {
		w.buf = append(w.buf, ' ')
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (w *textWriter) element(n *html.Node, depth int) {
	tag := n.Data
	block := blockElements[tag]
	w.flushBreak(block)

	if tag == "br" {
		w.buf = append(w.buf, '\n')
		return
	}

	idx := len(w.spans)
	w.spans = append(w.spans, docspan.Span{})
	begin := len(w.buf)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			w.text(c.Data)
		case html.ElementNode:
			w.element(c, depth+1)
		}
	}

	end := len(w.buf)
	// Trailing separator space belongs to the surrounding text.
	for end > begin && w.buf[end-1] == ' ' {
		end--
	}

	w.spans[idx] = docspan.Span{
		Begin:      begin,
		End:        end,
		Kind:       docspan.Kind(tag),
		Depth:      depth,
		Attributes: w.attributes(n),
	}
	if block {
		w.breakPending = true
	}
}

func (w *textWriter) attributes(n *html.Node) map[string]string {
	attrs := make(map[string]string)
	for _, a := range n.Attr {
		switch a.Key {
		case "id", "class", "role":
			attrs[a.Key] = a.Val
		}
	}
	if len(n.Data) == 2 && n.Data[0] == 'h' && n.Data[1] >= '1' && n.Data[1] <= '6' {
		attrs[docspan.LevelAttr] = strconv.Itoa(int(n.Data[1] - '0'))
	}
	if w.marked[n] {
		attrs[BoilerplateAttr] = "true"
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
