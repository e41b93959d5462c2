package thumbnail

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// Render draws the cached thumbnail for id into at most width x height
// terminal cells, two pixels per cell. It returns "" when the image is
// missing or cannot be decoded.
func (c *Cache) Render(id string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	key := renderKey{id: id, width: width, height: height}

	c.mu.Lock()
	if out, ok := c.rendered[key]; ok {
		c.mu.Unlock()
		return out
	}
	c.mu.Unlock()

	img, err := decode(c.Path(id))
	if err != nil {
		return ""
	}
	out := renderImage(img, width, height)

	c.mu.Lock()
	c.rendered[key] = out
	c.mu.Unlock()
	return out
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	img, _, err := image.Decode(f)
	return img, err
}

// fitSize scales srcW x srcH into maxW x maxH keeping the aspect ratio.
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		h = maxH
		w = srcW * maxH / srcH
	}
	return max(w, 1), max(h, 1)
}

func renderImage(img image.Image, width, height int) string {
	bounds := img.Bounds()
	cols, rows := fitSize(bounds.Dx(), bounds.Dy(), width, height*2)
	rows -= rows % 2
	if rows == 0 {
		rows = 2
	}

	sample := func(x, y int) lipgloss.Color {
		sx := bounds.Min.X + x*bounds.Dx()/cols
		sy := bounds.Min.Y + y*bounds.Dy()/rows
		r, g, b, _ := img.At(sx, sy).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
	}

	lines := make([]string, 0, rows/2)
	for y := 0; y < rows; y += 2 {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			style := lipgloss.NewStyle().Foreground(sample(x, y)).Background(sample(x, y+1))
			sb.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
