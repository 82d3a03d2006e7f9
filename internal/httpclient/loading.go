package httpclient

import "sync"

// LoadingGauge - счётчик запросов в полёте. Индикатор виден, пока
// счётчик больше нуля, поэтому пересекающиеся запросы не "закрывают"
// индикатор друг у друга.
type LoadingGauge struct {
	mu       sync.Mutex
	count    int
	onChange func(visible bool)
}

// NewLoadingGauge создаёт счётчик; onChange вызывается при каждой смене
// видимости (0 -> 1 и 1 -> 0), может быть nil.
func NewLoadingGauge(onChange func(visible bool)) *LoadingGauge {
	return &LoadingGauge{onChange: onChange}
}

func (g *LoadingGauge) Acquire() {
	g.mu.Lock()
	g.count++
	flipped := g.count == 1
	cb := g.onChange
	g.mu.Unlock()

	if flipped && cb != nil {
		cb(true)
	}
}

func (g *LoadingGauge) Release() {
	g.mu.Lock()
	flipped := false
	if g.count > 0 {
		g.count--
		flipped = g.count == 0
	}
	cb := g.onChange
	g.mu.Unlock()

	if flipped && cb != nil {
		cb(false)
	}
}

func (g *LoadingGauge) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count > 0
}
