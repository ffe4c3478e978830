package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/source"
)

// Filters carries the raw user filter inputs. Name, code and capital are
// free text; region comes from an enumerated set and is used as selected.
type Filters struct {
	Name    string
	Code    string
	Capital string
	Region  string
}

// Gateway is the lookup dependency of the dispatcher; *source.Client
// satisfies it.
type Gateway interface {
	Lookup(ctx context.Context, kind source.Kind, key string) ([]countries.Country, error)
}

// Dispatcher turns one filter submission into exactly one remote lookup and
// routes the outcome into the pager. Overlapping dispatches are resolved by
// a monotonic request token: only the latest issued request may replace the
// result set, so a slow early response never clobbers a later one.
type Dispatcher struct {
	mu      sync.Mutex
	seq     uint64
	gateway Gateway
	pager   *Pager
	surface Surface
}

func NewDispatcher(gateway Gateway, pager *Pager, surface Surface) *Dispatcher {
	return &Dispatcher{gateway: gateway, pager: pager, surface: surface}
}

// Dispatch evaluates the filters in fixed precedence (name, code, capital,
// region), issues the first non-empty filter's lookup, and falls back to the
// full listing when all four are empty. The chosen lookup's result replaces
// the result set unconditionally, including empty results. A failed code
// lookup surfaces a notice and leaves the result set untouched; capital and
// region failures collapse to an empty result set.
func (d *Dispatcher) Dispatch(ctx context.Context, f Filters) {
	l := log.ForComponent("browse")

	kind, key := ChooseLookup(f)
	token := d.nextToken()
	l.Debugf("dispatch #%d: %s %q", token, kind, key)

	result, err := d.gateway.Lookup(ctx, kind, key)

	if !d.isLatest(token) {
		l.Debugf("dispatch #%d superseded, dropping response", token)
		return
	}

	if err != nil {
		if errors.Is(err, source.ErrInvalidCode) {
			if d.surface != nil {
				d.surface.ShowNotice("invalid code")
			}
			return
		}
		// Capital and region misses read as "no results" to the user.
		l.Debugf("dispatch #%d: %v", token, err)
		d.pager.Replace(nil)
		return
	}

	d.pager.Replace(result)
}

// ChooseLookup applies the filter precedence and returns the single lookup
// kind and key to execute. The web handlers share it with the dispatcher so
// both paths agree on which filter wins.
func ChooseLookup(f Filters) (source.Kind, string) {
	if name := strings.TrimSpace(f.Name); name != "" {
		return source.ByName, name
	}
	if code := strings.TrimSpace(f.Code); code != "" {
		return source.ByCode, code
	}
	if capital := strings.TrimSpace(f.Capital); capital != "" {
		return source.ByCapital, capital
	}
	if f.Region != "" {
		return source.ByRegion, f.Region
	}
	return source.All, ""
}

func (d *Dispatcher) nextToken() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

func (d *Dispatcher) isLatest(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.seq
}
