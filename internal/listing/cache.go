package listing

import (
	"lending-admin/internal/domain/borrower"
	"strconv"
	"strings"
	"sync"
)

const defaultMaxCachedViews = 256

type bandKey struct {
	tab Tab
	ids string
}

// ViewCache memoizes views per snapshot version and ViewState, and band
// assignments per tab and page window. A new snapshot version drops
// everything. Cached views share their rows; callers must not modify them.
type ViewCache struct {
	mu       sync.Mutex
	version  uint64
	maxViews int
	views    map[ViewState]View
	bands    map[bandKey][]Scheme
}

func NewViewCache(maxViews int) *ViewCache {
	if maxViews <= 0 {
		maxViews = defaultMaxCachedViews
	}
	return &ViewCache{
		maxViews: maxViews,
		views:    make(map[ViewState]View),
		bands:    make(map[bandKey][]Scheme),
	}
}

func (c *ViewCache) View(version uint64, records []*borrower.Borrower, state ViewState) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		c.reset(version)
	}
	if v, ok := c.views[state]; ok {
		return v, nil
	}

	v, err := build(records, state, c.bandsFor)
	if err != nil {
		return View{}, err
	}
	if len(c.views) >= c.maxViews {
		clear(c.views)
	}
	c.views[state] = v
	return v, nil
}

// Len reports the number of cached views and band assignments.
func (c *ViewCache) Len() (views, bands int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.views), len(c.bands)
}

func (c *ViewCache) reset(version uint64) {
	c.version = version
	clear(c.views)
	clear(c.bands)
}

// bandsFor is called with c.mu held.
func (c *ViewCache) bandsFor(tab Tab, window []*borrower.Borrower) []Scheme {
	key := bandKey{tab: tab, ids: windowKey(window)}
	if s, ok := c.bands[key]; ok {
		return s
	}
	s := AssignBands(tab, window)
	if len(c.bands) >= c.maxViews {
		clear(c.bands)
	}
	c.bands[key] = s
	return s
}

func windowKey(window []*borrower.Borrower) string {
	var sb strings.Builder
	for i, b := range window {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(b.BorrowerID, 10))
	}
	return sb.String()
}
