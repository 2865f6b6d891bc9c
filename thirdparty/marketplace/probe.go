package marketplace

import (
	"context"
	"fmt"
	"sync"

	"github.com/muhammadheryan/ev-admin/utils/logger"
	"go.uber.org/zap"
)

// Endpoint is one candidate shape for a capability. Path takes the id through fmt.
type Endpoint struct {
	Method string
	Path   string
	Body   interface{}
}

// Capability is an ordered list of endpoint shapes that serve the same purpose on
// different backend versions.
type Capability struct {
	Name       string
	Candidates []Endpoint
}

// Prober remembers which candidate answered for each capability.
type Prober struct {
	mu       sync.Mutex
	resolved map[string]int
}

func NewProber() *Prober {
	return &Prober{resolved: make(map[string]int)}
}

func (p *Prober) get(name string) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.resolved[name]
	return i, ok
}

func (p *Prober) set(name string, index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolved[name] = index
}

func (p *Prober) forget(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.resolved, name)
}

// Resolved returns the chosen candidate index per capability.
func (p *Prober) Resolved() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]int, len(p.resolved))
	for k, v := range p.resolved {
		out[k] = v
	}
	return out
}

// call runs a capability. The remembered candidate goes first; candidates answering
// 404/405 are skipped, any other error stops the probe.
func (c *Client) call(ctx context.Context, capability Capability, id int64, out interface{}) error {
	skip := -1
	if index, ok := c.prober.get(capability.Name); ok {
		err := c.callEndpoint(ctx, capability.Candidates[index], id, out)
		if !IsMissing(err) {
			return err
		}
		logger.Warn("[Prober] resolved endpoint disappeared, probing again",
			zap.String("capability", capability.Name), zap.Int("index", index), zap.String("error", err.Error()))
		c.prober.forget(capability.Name)
		skip = index
	}

	var lastErr error
	for i, ep := range capability.Candidates {
		if i == skip {
			continue
		}
		err := c.callEndpoint(ctx, ep, id, out)
		if err == nil {
			c.prober.set(capability.Name, i)
			logger.Debug("[Prober] capability resolved", zap.String("capability", capability.Name), zap.Int("index", i))
			return nil
		}
		if !IsMissing(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("capability %s unavailable: %w", capability.Name, lastErr)
}

func (c *Client) callEndpoint(ctx context.Context, ep Endpoint, id int64, out interface{}) error {
	return c.do(ctx, ep.Method, fmt.Sprintf(ep.Path, id), ep.Body, out)
}
