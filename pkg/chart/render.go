package chart

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart/v2"
)

var ErrNoPanels = errors.New("nothing to render")

// Renderer draws panels side by side into a single PNG figure.
type Renderer struct {
	Dir         string
	PanelWidth  int
	PanelHeight int

	mu sync.Mutex
}

func NewRenderer(dir string, panelWidth, panelHeight int) *Renderer {
	return &Renderer{
		Dir:         dir,
		PanelWidth:  panelWidth,
		PanelHeight: panelHeight,
	}
}

// Render writes the figure to the output directory and returns its path.
func (r *Renderer) Render(panels ...Panel) (string, error) {
	if len(panels) == 0 {
		return "", ErrNoPanels
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	images := make([]image.Image, 0, len(panels))
	for _, p := range panels {
		if p.Empty() {
			return "", errors.Errorf("panel %q has no laps", p.Title)
		}
		img, err := r.renderPanel(p)
		if err != nil {
			return "", errors.Wrapf(err, "rendering %q", p.Title)
		}
		images = append(images, img)
	}

	dest := compose(images, r.PanelWidth, r.PanelHeight)

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}
	path := filepath.Join(r.Dir, FileName(panels...))
	if err := draw2dimg.SaveToPngFile(path, dest); err != nil {
		return "", errors.Wrap(err, "saving chart")
	}
	logrus.Debugf("chart with %d panel(s) written to %s", len(panels), path)
	return path, nil
}

func (r *Renderer) renderPanel(p Panel) (image.Image, error) {
	ch := p.Chart(r.PanelWidth, r.PanelHeight)
	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// compose lays the images out from left to right on the figure background.
func compose(images []image.Image, width, height int) *image.RGBA {
	dest := image.NewRGBA(image.Rect(0, 0, width*len(images), height))
	gc := draw2dimg.NewGraphicContext(dest)

	gc.SetFillColor(figureBackground)
	draw2dkit.Rectangle(gc, 0, 0, float64(width*len(images)), float64(height))
	gc.Fill()

	for i, img := range images {
		gc.Save()
		gc.Translate(float64(i*width), 0)
		gc.DrawImage(img)
		gc.Restore()
	}
	return dest
}

// FileName derives the PNG name from the panel names, e.g.
// "2023_bahrain_grand_prix_ver_vs_2024_bahrain_grand_prix_ver.png".
func FileName(panels ...Panel) string {
	names := make([]string, 0, len(panels))
	for _, p := range panels {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "laps.png"
	}
	return strings.Join(names, "_vs_") + ".png"
}
