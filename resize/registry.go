// Package resize looks up the available resizers by name.
package resize

import (
	"sort"
	"strings"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/resize/bild"
	"github.com/srlehn/baseimg/resize/caire"
	"github.com/srlehn/baseimg/resize/gift"
	"github.com/srlehn/baseimg/resize/imaging"
	"github.com/srlehn/baseimg/resize/nfnt"
	"github.com/srlehn/baseimg/resize/rdefault"
	"github.com/srlehn/baseimg/resize/rez"
	"github.com/srlehn/baseimg/resize/xdraw"
	"github.com/srlehn/baseimg/surface"
)

var resizers = map[string]func() surface.Resizer{
	`default`:          func() surface.Resizer { return &rdefault.Resizer{} },
	`bild`:             func() surface.Resizer { return &bild.Resizer{} },
	`caire`:            func() surface.Resizer { return &caire.Resizer{} },
	`gift`:             func() surface.Resizer { return &gift.Resizer{} },
	`imaging`:          func() surface.Resizer { return &imaging.Resizer{} },
	`nfnt`:             func() surface.Resizer { return &nfnt.Resizer{} },
	`rez`:              func() surface.Resizer { return rez.Resizer{} },
	`xdraw`:            xdraw.ApproxBiLinear,
	`xdraw-bilinear`:   xdraw.BiLinear,
	`xdraw-catmullrom`: xdraw.CatmullRom,
}

// ByName returns a new resizer for the case-insensitive name.
func ByName(name string) (surface.Resizer, error) {
	newResizer, ok := resizers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Newf(consts.ErrUnknownResizer, `%q (available: %s)`, name, strings.Join(Names(), `, `))
	}
	return newResizer(), nil
}

// Names lists the registered resizer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
