package ndscene

// Parameters holds the generic numeric model parameters shared by every
// dimension of a State. Which fields a given model consumes is up to the
// model factory; the state merely carries them.
type Parameters struct {
	// Radius is the polar radius used by round models (spheres, tori).
	Radius float64
	// MinorRadius is the secondary radius of models that have one,
	// e.g. the tube radius of a torus.
	MinorRadius float64
	// Constant is a free model constant (e.g. a Julia set parameter).
	Constant float64
	// Precision controls polar subdivision when triangulating.
	Precision float64

	// Iterations is the IFS/fractal iteration count.
	Iterations int
	// Seed seeds randomized model generation.
	Seed int
	// Functions is the number of functions in a generated IFS.
	Functions int
	// FlameCoefficients is the number of flame variation coefficients.
	FlameCoefficients int

	// PreRotate and PostRotate toggle random rotations applied before and
	// after each IFS function.
	PreRotate  bool
	PostRotate bool
}

// DefaultParameters returns the parameter set a fresh State starts with.
func DefaultParameters() Parameters {
	return Parameters{
		Radius:            1,
		MinorRadius:       0.5,
		Constant:          0.9,
		Precision:         10,
		Iterations:        4,
		Seed:              0,
		Functions:         3,
		FlameCoefficients: 3,
		PreRotate:         true,
		PostRotate:        false,
	}
}
