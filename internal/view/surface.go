package view

import (
	"context"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Surface is where the presenter puts rendered lists. target names the
// element whose contents are replaced.
type Surface interface {
	Patch(ctx context.Context, target string, c templ.Component) error
}

// Slots collects components for a full page render. Pages read them back
// by target when they are rendered.
type Slots map[string]templ.Component

func (s Slots) Patch(_ context.Context, target string, c templ.Component) error {
	s[target] = c
	return nil
}

// Get returns the component for target, or an empty one.
func (s Slots) Get(target string) templ.Component {
	if c, ok := s[target]; ok {
		return c
	}
	return templ.NopComponent
}

// SSESurface patches the inner HTML of the element with the target id in the
// browser over a datastar event stream.
type SSESurface struct {
	sse *datastar.ServerSentEventGenerator
}

func NewSSESurface(sse *datastar.ServerSentEventGenerator) *SSESurface {
	return &SSESurface{sse: sse}
}

func (s *SSESurface) Patch(_ context.Context, target string, c templ.Component) error {
	return s.sse.PatchElementTempl(c,
		datastar.WithSelectorID(target),
		datastar.WithModeInner(),
	)
}
