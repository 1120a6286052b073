package ndscene

// CoordinateMode selects which camera representation is authoritative
// when projections are recomputed.
type CoordinateMode int

const (
	// Cartesian means CartesianPosition is authoritative.
	Cartesian CoordinateMode = iota
	// Polar means PolarPosition is authoritative and is converted into
	// CartesianPosition on every UpdateMatrix pass.
	Polar
)

// String returns the wire name of the mode ("cartesian" or "polar").
func (m CoordinateMode) String() string {
	if m == Polar {
		return "polar"
	}
	return "cartesian"
}

// Renderer is the opaque handle to an active model, produced by the
// renderer-selection handoff (see the backend package). The core performs
// no geometry itself; it only stores, describes, and replaces renderers.
type Renderer interface {
	// Render produces the renderer's output. When updateMatrix is true
	// the renderer must call State.UpdateMatrix before drawing.
	Render(updateMatrix bool) (string, error)

	// Depth returns the model's intrinsic dimension.
	Depth() int

	// RenderDepth returns the dimension the model is embedded in when
	// rendered. It may exceed Depth.
	RenderDepth() int

	// ID returns the model type identifier, e.g. "cube".
	ID() string

	// Name returns the human-readable model name, e.g. "4-cube".
	Name() string
}

// MinDepth is the lowest dimension a State supports. The chain always
// starts at 2.
const MinDepth = 2

// State is the full viewing and geometry state of an N-dimensional scene:
// an ordered chain of per-dimension layers plus the fields shared by every
// dimension. It is constructed once per session; parsers mutate it in
// place.
//
// State is not safe for concurrent use. Callers drive all operations from
// a single goroutine.
type State struct {
	// layers holds the chain, index 0 being dimension 2.
	layers []*Layer

	// Mode is the shared coordinate-mode flag.
	Mode CoordinateMode
	// Colors is the shared color scheme.
	Colors ColorScheme
	// Parameters are the shared generic model parameters.
	Parameters Parameters
	// ExportMultiplier scales precision when exporting documents.
	ExportMultiplier float64
	// IDPrefix namespaces identifiers in emitted documents.
	IDPrefix string

	// Model is the active renderer handle, nil until the first successful
	// renderer-selection handoff.
	Model Renderer
}

// Option configures a State during creation.
type Option func(*State)

// WithMode sets the initial coordinate mode.
func WithMode(m CoordinateMode) Option {
	return func(s *State) { s.Mode = m }
}

// WithColorScheme sets the initial color scheme.
func WithColorScheme(c ColorScheme) Option {
	return func(s *State) { s.Colors = c }
}

// WithIDPrefix sets the identifier prefix used in emitted documents.
func WithIDPrefix(prefix string) Option {
	return func(s *State) { s.IDPrefix = prefix }
}

// WithParameters sets the initial generic parameters.
func WithParameters(p Parameters) Option {
	return func(s *State) { s.Parameters = p }
}

// New constructs a state chain covering every dimension from 2 up to
// maxDepth, all layers at their constructor defaults. maxDepth values
// below MinDepth are clamped to MinDepth; the chain size is fixed for the
// lifetime of the State.
//
// The default shared state is polar coordinate mode, the default color
// scheme and parameters, export multiplier 2 and an empty ID prefix.
func New(maxDepth int, opts ...Option) *State {
	if maxDepth < MinDepth {
		maxDepth = MinDepth
	}
	s := &State{
		layers:           make([]*Layer, 0, maxDepth-MinDepth+1),
		Mode:             Polar,
		Colors:           DefaultColorScheme(),
		Parameters:       DefaultParameters(),
		ExportMultiplier: 2,
	}
	for d := MinDepth; d <= maxDepth; d++ {
		s.layers = append(s.layers, newLayer(d))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxDepth returns the highest dimension in the chain.
func (s *State) MaxDepth() int {
	return MinDepth + len(s.layers) - 1
}

// Layer returns the layer for the given dimension, or nil if the
// dimension is outside the configured 2..MaxDepth range.
func (s *State) Layer(dim int) *Layer {
	if dim < MinDepth || dim > s.MaxDepth() {
		return nil
	}
	return s.layers[dim-MinDepth]
}

// UpdateMatrix recomputes every layer's projection in a single pass from
// the highest dimension down to the base. In polar mode each layer's
// polar position is first converted into its cartesian position; each
// projection is recomputed exactly once per call.
func (s *State) UpdateMatrix() {
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if s.Mode == Polar {
			l.applyPolar()
		}
		l.Projection.Update(l.CartesianPosition, l.CartesianTarget)
	}
}

// SetModel replaces the active model handle. The previous handle, if any,
// is closed first when it implements io.Closer-style cleanup.
func (s *State) SetModel(r Renderer) {
	if s.Model != nil {
		if c, ok := s.Model.(interface{ Close() }); ok {
			c.Close()
		}
	}
	s.Model = r
}
