package gfx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// YAMLImage is the cell-art file format.
//
//	fg: white
//	transparent: "."
//	palette:
//	  "#": {bg: red}
//	  "o": {fg: yellow, glyph: "●"}
//	rows:
//	  - "..#.."
//	  - ".#o#."
type YAMLImage struct {
	Fg          string               `yaml:"fg,omitempty"`
	Transparent string               `yaml:"transparent,omitempty"`
	Palette     map[string]YAMLPaint `yaml:"palette,omitempty"`
	Rows        []string             `yaml:"rows"`
}

// YAMLPaint describes how one rune of the rows is painted.
type YAMLPaint struct {
	Fg    string `yaml:"fg,omitempty"`
	Bg    string `yaml:"bg,omitempty"`
	Glyph string `yaml:"glyph,omitempty"`
}

// ParseImage parses a YAML cell-art image.
// Runes without a palette entry are drawn as themselves in the default fg.
func ParseImage(data []byte) (*core.Image, error) {
	var yi YAMLImage
	if err := yaml.Unmarshal(data, &yi); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yi.Rows) == 0 {
		return nil, fmt.Errorf("image has no rows")
	}

	fg := core.ColorDefault
	if yi.Fg != "" {
		c, ok := core.ParseColor(yi.Fg)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", yi.Fg)
		}
		fg = c
	}

	var transparent rune
	if yi.Transparent != "" {
		transparent = []rune(yi.Transparent)[0]
	}

	palette := make(map[rune]core.Cell, len(yi.Palette))
	for key, p := range yi.Palette {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("palette key %q must be a single character", key)
		}
		cell, err := p.cell(runes[0], fg)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", key, err)
		}
		palette[runes[0]] = cell
	}

	img := core.ImageFromRows(yi.Rows, fg, transparent)
	for y, row := range yi.Rows {
		for x, r := range []rune(row) {
			if cell, ok := palette[r]; ok && r != transparent {
				img.Set(x, y, cell)
			}
		}
	}
	return img, nil
}

func (p YAMLPaint) cell(r rune, fg core.Color) (core.Cell, error) {
	cell := core.Cell{Rune: r, Fg: fg}
	if p.Fg != "" {
		c, ok := core.ParseColor(p.Fg)
		if !ok {
			return cell, fmt.Errorf("unknown color %q", p.Fg)
		}
		cell.Fg = c
	}
	if p.Bg != "" {
		c, ok := core.ParseColor(p.Bg)
		if !ok {
			return cell, fmt.Errorf("unknown color %q", p.Bg)
		}
		cell.Bg = c
		if p.Glyph == "" {
			cell.Rune = ' '
		}
	}
	if p.Glyph != "" {
		cell.Rune = []rune(p.Glyph)[0]
	}
	return cell, nil
}

// LoadImage reads a YAML cell-art image from disk.
func LoadImage(path string) (*core.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, err := ParseImage(data)
	if err != nil {
		return nil, fmt.Errorf("parse image %s: %w", path, err)
	}
	return img, nil
}
