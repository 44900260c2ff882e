package transport

import (
	"net/url"
	"strings"
)

// Strategy is one network path for an outbound request. A proxy strategy
// rewrites the target URL to route through a relay endpoint; the direct
// strategy leaves it untouched.
type Strategy interface {
	Name() string
	Rewrite(targetURL string) string
}

// ProxyStrategy routes a request through a relay endpoint by prefixing
// the escaped target URL
type ProxyStrategy struct {
	name   string
	prefix string
}

// NewProxyStrategy creates a relay strategy from a URL prefix
func NewProxyStrategy(name, prefix string) *ProxyStrategy {
	return &ProxyStrategy{name: name, prefix: prefix}
}

func (s *ProxyStrategy) Name() string {
	return s.name
}

func (s *ProxyStrategy) Rewrite(targetURL string) string {
	return s.prefix + url.QueryEscape(targetURL)
}

// DirectStrategy sends the request straight to the target
type DirectStrategy struct{}

func (s *DirectStrategy) Name() string {
	return "direct"
}

func (s *DirectStrategy) Rewrite(targetURL string) string {
	return targetURL
}

// ParseStrategies builds an ordered strategy chain from relay specs.
// Each spec is either a proxy URL prefix or the literal "direct"; the
// strategy name is derived from the relay host.
func ParseStrategies(specs []string) []Strategy {
	strategies := make([]Strategy, 0, len(specs))
	for _, spec := range specs {
		if strings.EqualFold(spec, "direct") {
			strategies = append(strategies, &DirectStrategy{})
			continue
		}
		name := spec
		if u, err := url.Parse(spec); err == nil && u.Host != "" {
			name = u.Host
		}
		strategies = append(strategies, NewProxyStrategy(name, spec))
	}
	return strategies
}
