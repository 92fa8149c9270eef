package story

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
)

// Card colors for the downloadable story PDF.
var (
	pageBg    = creator.ColorRGBFrom8bit(244, 237, 255)
	bandBg    = creator.ColorRGBFrom8bit(229, 214, 255)
	titleCol  = creator.ColorRGBFrom8bit(70, 34, 120)
	metaCol   = creator.ColorRGBFrom8bit(50, 28, 95)
	headerCol = creator.ColorRGBFrom8bit(90, 45, 140)
	bodyCol   = creator.ColorRGBFrom8bit(60, 28, 110)
)

// RenderPDF writes the story as a themed A4 document. The background bands
// are drawn on the first page only; overflow pages stay plain.
func RenderPDF(w io.Writer, res Result) error {
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}

	c := creator.New()
	c.SetPageSize(creator.PageSizeA4)
	c.SetPageMargins(42, 42, 56, 42)
	c.NewPage()

	pageW, pageH := creator.PageSizeA4[0], creator.PageSizeA4[1]
	bg := c.NewRectangle(0, 0, pageW, pageH)
	bg.SetFillColor(pageBg)
	bg.SetBorderWidth(0)
	if err := c.Draw(bg); err != nil {
		return err
	}
	band := c.NewRectangle(0, 0, pageW, 255)
	band.SetFillColor(bandBg)
	band.SetBorderWidth(0)
	if err := c.Draw(band); err != nil {
		return err
	}

	title := c.NewParagraph("AI Kids Story")
	title.SetFont(bold)
	title.SetFontSize(24)
	title.SetColor(titleCol)
	title.SetMargins(0, 0, 0, 6)
	if err := c.Draw(title); err != nil {
		return err
	}

	tagline := c.NewParagraph("Made with imagination just for you!")
	tagline.SetFont(bold)
	tagline.SetFontSize(13)
	tagline.SetColor(titleCol)
	tagline.SetMargins(0, 0, 0, 16)
	if err := c.Draw(tagline); err != nil {
		return err
	}

	meta := []struct{ label, value string }{
		{"Main Character", res.Params.Character},
		{"Setting", res.Params.Setting},
		{"Genre", res.Params.Genre},
		{"Tone", res.Params.Tone},
		{"Story Length", res.LengthLabel},
	}
	for _, m := range meta {
		if m.value == "" {
			continue
		}
		p := c.NewParagraph(fmt.Sprintf("%s: %s", m.label, m.value))
		p.SetFont(bold)
		p.SetFontSize(13)
		p.SetColor(metaCol)
		p.SetMargins(0, 0, 2, 2)
		if err := c.Draw(p); err != nil {
			return err
		}
	}

	header := c.NewParagraph("Your Story")
	header.SetFont(bold)
	header.SetFontSize(18)
	header.SetColor(headerCol)
	header.SetMargins(0, 0, 14, 6)
	if err := c.Draw(header); err != nil {
		return err
	}

	for _, line := range strings.Split(res.Story, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		p := c.NewParagraph(text)
		p.SetFont(bold)
		p.SetFontSize(13)
		p.SetColor(bodyCol)
		p.SetLineHeight(1.3)
		p.SetMargins(0, 0, 4, 4)
		if err := c.Draw(p); err != nil {
			return err
		}
	}

	return c.Write(w)
}
