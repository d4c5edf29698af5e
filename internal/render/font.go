// Package render turns frequency data into something a person can look at:
// a plain list, a bar chart PNG or a word cloud PNG.
package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	baseFont *truetype.Font
	fontErr  error
)

// loadFont parses the embedded Go Regular font once.
func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		baseFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return baseFont, fontErr
}
