package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// paragraphs wraps the source in a paragraph without interpreting it.
type paragraphs struct{}

func (paragraphs) Render(src string) (string, error) {
	return "<p>" + html.EscapeString(src) + "</p>", nil
}

type failing struct{}

func (failing) Render(string) (string, error) { return "", errors.New("boom") }

func TestContainerClasses(t *testing.T) {
	t.Parallel()

	n := Container(ContainerProps{ID: "try", Background: BackgroundDark, Padding: []string{"top", "bottom"}}, Text("x"))
	doc := parse(t, n)

	c := doc.Find("div.container")
	require.Equal(t, 1, c.Length())
	require.Equal(t, "container darkBackground paddingBottom paddingTop", c.AttrOr("class", ""))
	require.Equal(t, "try", c.AttrOr("id", ""))
	require.Equal(t, "x", c.Find("div.wrapper").Text())
}

func TestContainerOmitsEmptyID(t *testing.T) {
	t.Parallel()

	doc := parse(t, Container(ContainerProps{}))
	_, ok := doc.Find("div.container").Attr("id")
	require.False(t, ok)
}

func TestGridBlockImagePlacement(t *testing.T) {
	t.Parallel()

	n, err := GridBlock(paragraphs{}, GridProps{
		Align:  "center",
		Layout: LayoutFourColumn,
		Items: []GridItem{
			{Title: "Left", Content: "l", Image: "/img/l.svg", ImageAlign: ImageLeft},
			{Title: "Right", Content: "r", Image: "/img/r.svg", ImageAlign: ImageRight},
			{Title: "Top", Content: "t", Image: "/img/t.svg", ImageAlign: ImageTop},
		},
	})
	require.NoError(t, err)
	doc := parse(t, n)

	items := doc.Find("div.gridBlock > div.blockElement")
	require.Equal(t, 3, items.Length())

	left := items.Eq(0)
	require.Equal(t, "blockElement alignCenter imageAlignSide imageAlignLeft fourByGridBlock", left.AttrOr("class", ""))
	require.True(t, left.Children().First().HasClass("blockImage"), "left image precedes content")

	right := items.Eq(1)
	require.True(t, right.Children().Last().HasClass("blockImage"), "right image follows content")
	require.Equal(t, "Right", right.Find("img").AttrOr("alt", ""))

	top := items.Eq(2)
	require.True(t, top.HasClass("imageAlignTop"))
	require.Equal(t, "Top", top.Find(".blockContent h2").Text())
	require.Equal(t, "t", top.Find(".markdownBlock p").Text())
}

func TestGridBlockDefaultsToTwoColumns(t *testing.T) {
	t.Parallel()

	n, err := GridBlock(paragraphs{}, GridProps{Items: []GridItem{{Content: "plain", ImageLink: "/x"}}})
	require.NoError(t, err)
	doc := parse(t, n)

	el := doc.Find("div.blockElement")
	require.Equal(t, "blockElement twoByGridBlock", el.AttrOr("class", ""))
	require.Equal(t, 0, el.Find(".blockImage").Length(), "no image without a source")
	require.Equal(t, 0, el.Find("h2").Length())
}

func TestGridBlockPropagatesMarkdownErrors(t *testing.T) {
	t.Parallel()

	_, err := GridBlock(failing{}, GridProps{Items: []GridItem{{Content: "x"}}})
	require.ErrorContains(t, err, "grid item 0: boom")

	_, err = MarkdownBlock(nil, "x")
	require.Error(t, err)
}

func TestMarkdownBlockKeepsMarkup(t *testing.T) {
	t.Parallel()

	n, err := MarkdownBlock(paragraphs{}, "a < b")
	require.NoError(t, err)
	out, err := String(n)
	require.NoError(t, err)
	require.Equal(t, `<span class="markdownBlock"><p>a &lt; b</p></span>`, out)
}

func parse(t *testing.T, n *html.Node) *goquery.Document {
	t.Helper()

	out, err := String(n)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}
