package landing

import (
	"golang.org/x/net/html"

	"finitefield.org/docs-landing/internal/layout"
	"finitefield.org/docs-landing/internal/siteconfig"
	"finitefield.org/docs-landing/internal/siteurl"
)

type sectionFunc func(p *Page, lang string) (*html.Node, error)

var sections = map[string]sectionFunc{
	siteconfig.SectionFeatures:       (*Page).features,
	siteconfig.SectionFeatureCallout: (*Page).featureCallout,
	siteconfig.SectionLearnHow:       (*Page).learnHow,
	siteconfig.SectionTryOut:         (*Page).tryOut,
	siteconfig.SectionDescription:    (*Page).description,
	siteconfig.SectionShowcase:       (*Page).showcase,
}

var blockPadding = []string{"bottom", "top"}

// block renders grid items inside a padded container, translating titles and
// content for lang.
func (p *Page) block(lang string, c layout.ContainerProps, gridLayout string, items ...layout.GridItem) (*html.Node, error) {
	for i := range items {
		items[i].Title = p.t(lang, items[i].Title)
		items[i].Content = p.t(lang, items[i].Content)
		items[i].Image = siteurl.Asset(p.cfg.BaseURL, items[i].Image)
	}
	c.Padding = blockPadding
	grid, err := layout.GridBlock(p.md, layout.GridProps{
		Align:  "center",
		Layout: gridLayout,
		Items:  items,
	})
	if err != nil {
		return nil, err
	}
	return layout.Container(c, grid), nil
}

func (p *Page) tryOut(lang string) (*html.Node, error) {
	return p.block(lang, layout.ContainerProps{ID: "try"}, "", layout.GridItem{
		Title: "Wonderful SVG Illustrations",
		Content: "To make your landing page more attractive, use illustrations! Check out " +
			"[**unDraw**](https://undraw.co/) which provides you with customizable illustrations which are free to use. " +
			"The illustrations you see on this page are from unDraw.",
		Image:      "img/undraw_code_review.svg",
		ImageAlign: layout.ImageLeft,
	})
}

func (p *Page) description(lang string) (*html.Node, error) {
	return p.block(lang, layout.ContainerProps{Background: layout.BackgroundDark}, "", layout.GridItem{
		Title:      "Description",
		Content:    "This is another description of how this project is useful",
		Image:      "img/undraw_note_list.svg",
		ImageAlign: layout.ImageRight,
	})
}

func (p *Page) learnHow(lang string) (*html.Node, error) {
	return p.block(lang, layout.ContainerProps{Background: layout.BackgroundLight}, "", layout.GridItem{
		Title:      "Randomly Generated Theme Colors",
		Content:    "Each new Docusaurus project has **randomly-generated** theme colors.",
		Image:      "img/undraw_youtube_tutorial.svg",
		ImageAlign: layout.ImageRight,
	})
}

func (p *Page) features(lang string) (*html.Node, error) {
	return p.block(lang, layout.ContainerProps{Background: layout.BackgroundLight}, layout.LayoutFourColumn,
		layout.GridItem{
			Title:      "Make it open",
			Content:    "Openness mitigates the learning-curve of newcomers. Think globally. Optimize globally.",
			Image:      "img/undraw_youtube_tutorial.svg",
			ImageAlign: layout.ImageTop,
		},
		layout.GridItem{
			Title:      "Keep flat",
			Content:    "Let's think about how we can keep the flat organization. Flat gives reliability. Flat means minimizing the information gap.",
			Image:      "img/undraw_open_source.svg",
			ImageAlign: layout.ImageTop,
		},
		layout.GridItem{
			Title:      "Code first",
			Content:    "You don't trust code? Then create a trustable code. Or the system. Think about the future.",
			Image:      "img/undraw_code_review.svg",
			ImageAlign: layout.ImageTop,
		},
	)
}

func (p *Page) featureCallout(lang string) (*html.Node, error) {
	body, err := layout.MarkdownBlock(p.md, p.t(lang, "These are features of this project"))
	if err != nil {
		return nil, err
	}
	return layout.Element("div", layout.Attrs("class", "productShowcaseSection paddingBottom", "style", "text-align: center"),
		layout.Element("h2", nil, layout.Text(p.t(lang, "Feature Callout"))),
		body,
	), nil
}
