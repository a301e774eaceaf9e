package layout

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown renders markdown source to HTML.
type Markdown interface {
	Render(src string) (string, error)
}

// Container backgrounds.
const (
	BackgroundDark      = "dark"
	BackgroundLight     = "light"
	BackgroundHighlight = "highlight"
)

// Grid layouts.
const (
	LayoutTwoColumn   = "twoColumn"
	LayoutThreeColumn = "threeColumn"
	LayoutFourColumn  = "fourColumn"
)

// Image alignments within a grid item.
const (
	ImageLeft   = "left"
	ImageRight  = "right"
	ImageTop    = "top"
	ImageBottom = "bottom"
)

// ContainerProps configures Container.
type ContainerProps struct {
	ID         string
	Background string
	// Padding lists sides: "all", "top", "bottom", "left", "right".
	Padding []string
}

// Container wraps children in a padded, optionally tinted full-width section.
func Container(p ContainerProps, children ...*html.Node) *html.Node {
	classes := []string{"container"}
	switch p.Background {
	case BackgroundDark:
		classes = append(classes, "darkBackground")
	case BackgroundLight:
		classes = append(classes, "lightBackground")
	case BackgroundHighlight:
		classes = append(classes, "highlightBackground")
	}
	for _, side := range []string{"all", "bottom", "left", "right", "top"} {
		if contains(p.Padding, side) {
			classes = append(classes, "padding"+capitalize(side))
		}
	}
	return Element("div", Attrs("class", Classes(classes...), "id", p.ID),
		Element("div", Attrs("class", "wrapper"), children...),
	)
}

// GridItem is one cell of a GridBlock.
type GridItem struct {
	Title      string
	Content    string // markdown
	Image      string
	ImageAlt   string
	ImageAlign string
	ImageLink  string
}

// GridProps configures GridBlock.
type GridProps struct {
	Align  string // "center", "right" or empty for left
	Layout string
	Items  []GridItem
}

// GridBlock renders items side by side, each with its markdown content and an
// optional illustration.
func GridBlock(md Markdown, p GridProps) (*html.Node, error) {
	grid := Element("div", Attrs("class", "gridBlock"))
	for i, item := range p.Items {
		n, err := gridElement(md, p, item)
		if err != nil {
			return nil, fmt.Errorf("grid item %d: %w", i, err)
		}
		grid.AppendChild(n)
	}
	return grid, nil
}

func gridElement(md Markdown, p GridProps, item GridItem) (*html.Node, error) {
	classes := []string{"blockElement"}
	switch p.Align {
	case "center":
		classes = append(classes, "alignCenter")
	case "right":
		classes = append(classes, "alignRight")
	}
	if item.Image != "" {
		switch item.ImageAlign {
		case ImageLeft, ImageRight:
			classes = append(classes, "imageAlignSide", "imageAlign"+capitalize(item.ImageAlign))
		case ImageTop:
			classes = append(classes, "imageAlignTop")
		case ImageBottom:
			classes = append(classes, "imageAlignBottom")
		}
	}
	switch p.Layout {
	case LayoutFourColumn:
		classes = append(classes, "fourByGridBlock")
	case LayoutThreeColumn:
		classes = append(classes, "threeByGridBlock")
	default:
		classes = append(classes, "twoByGridBlock")
	}

	body, err := MarkdownBlock(md, item.Content)
	if err != nil {
		return nil, err
	}
	content := Element("div", Attrs("class", "blockContent"),
		titleNode(item.Title),
		Element("div", nil, body),
	)

	el := Element("div", Attrs("class", Classes(classes...)))
	image := blockImage(item)
	switch item.ImageAlign {
	case ImageLeft, ImageTop:
		Append(el, image, content)
	default:
		Append(el, content, image)
	}
	return el, nil
}

func titleNode(title string) *html.Node {
	if title == "" {
		return nil
	}
	return Element("h2", nil, Text(title))
}

func blockImage(item GridItem) *html.Node {
	if item.Image == "" {
		return nil
	}
	alt := item.ImageAlt
	if alt == "" {
		alt = item.Title
	}
	img := Element("img", Attrs("src", item.Image, "alt", alt))
	if item.ImageLink != "" {
		img = Element("a", Attrs("href", item.ImageLink), img)
	}
	return Element("div", Attrs("class", "blockImage"), img)
}

// MarkdownBlock renders src and returns it wrapped in a span so it can be
// placed anywhere in the tree.
func MarkdownBlock(md Markdown, src string) (*html.Node, error) {
	if md == nil {
		return nil, errors.New("layout: markdown renderer is nil")
	}
	out, err := md.Render(src)
	if err != nil {
		return nil, err
	}
	span := Element("span", Attrs("class", "markdownBlock"))
	ctx := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	nodes, err := html.ParseFragment(strings.NewReader(out), ctx)
	if err != nil {
		return nil, fmt.Errorf("layout: parse markdown output: %w", err)
	}
	Append(span, nodes...)
	return span, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
