package render

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
	"time"

	"github.com/iafilius/TrainingPlots/src/logging"
	"github.com/iafilius/TrainingPlots/src/series"
)

// ErrEmptySeries is returned when there is nothing to draw.
var ErrEmptySeries = errors.New("series has no finite points")

// ErrUnknownBackend is returned by Backend for an unregistered name.
var ErrUnknownBackend = errors.New("unknown render backend")

// Renderer draws a single-series line chart.
type Renderer interface {
	Name() string
	Render(spec ChartSpec, s series.Series) (image.Image, error)
}

var backends = map[string]Renderer{
	"gochart": GoChart{},
	"gonum":   Gonum{},
}

// DefaultBackend is used when no backend is named.
const DefaultBackend = "gochart"

// Backend looks a renderer up by name; "" selects DefaultBackend.
func Backend(name string) (Renderer, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		n = DefaultBackend
	}
	r, ok := backends[n]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return r, nil
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	out := make([]string, 0, len(backends))
	for k := range backends {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Draw validates spec, renders s with r and stamps the caption if one is set.
func Draw(r Renderer, spec ChartSpec, s series.Series) (image.Image, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if s.Finite().Empty() {
		return nil, ErrEmptySeries
	}
	defer logging.TimeTrack(time.Now(), fmt.Sprintf("render %q with %s", spec.Title, r.Name()))
	img, err := r.Render(spec, s)
	if err != nil {
		return nil, err
	}
	return drawCaption(img, spec.Caption), nil
}
