// Package resize selects a bilinear resizing engine by name.
//
// The default engine is package resample. The others wrap third-party
// bilinear scalers. They sample around pixel centers and do not reproduce
// the corner mapping of package resample, so their output differs slightly.
package resize

import (
	"image"
	"slices"
	"strings"

	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/resample"
	"github.com/srlehn/bilerp/resize/bild"
	"github.com/srlehn/bilerp/resize/gift"
	"github.com/srlehn/bilerp/resize/imaging"
	"github.com/srlehn/bilerp/resize/nfnt"
	"github.com/srlehn/bilerp/resize/rez"
	"github.com/srlehn/bilerp/resize/xdraw"
)

// DefaultEngine is the name of the resample based engine.
const DefaultEngine = `bilerp`

var engines = map[string]func() resample.Resizer{
	`xdraw`:        xdraw.BiLinear,
	`xdraw-approx`: xdraw.ApproxBiLinear,
	`gift`:         func() resample.Resizer { return &gift.Resizer{} },
	`bild`:         func() resample.Resizer { return &bild.Resizer{} },
	`imaging`:      func() resample.Resizer { return &imaging.Resizer{} },
	`nfnt`:         func() resample.Resizer { return &nfnt.Resizer{} },
	`rez`:          func() resample.Resizer { return &rez.Resizer{} },
}

// Engines returns the known engine names, the default first.
func Engines() []string {
	names := make([]string, 0, len(engines)+1)
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{DefaultEngine}, names...)
}

// New returns the engine called name. The options only configure the
// default engine, the others ignore them.
func New(name string, opts ...resample.Option) (resample.Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 || name == DefaultEngine {
		r, err := resample.New(opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	newEngine, ok := engines[name]
	if !ok {
		return nil, errors.Errorf(`unknown engine %q, known engines: %s`, name, strings.Join(Engines(), `, `))
	}
	return &guard{name: name, resizer: newEngine()}, nil
}

// guard applies the input checks of package resample to a third-party engine.
type guard struct {
	name    string
	resizer resample.Resizer
}

func (g *guard) Resize(img image.Image, size image.Point) (image.Image, error) {
	if g == nil || g.resizer == nil {
		return nil, errors.NilReceiver()
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Kind(resample.ErrInvalidSource, `engine %s: empty source image`, g.name)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.Kind(resample.ErrDegenerateOutput, `engine %s: output size %v`, g.name, size)
	}
	m, err := g.resizer.Resize(img, size)
	if err != nil {
		return nil, errors.WrapPrefix(err, `engine `+g.name, 0)
	}
	return m, nil
}
