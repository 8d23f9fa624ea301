package domain

// Transform name constants for the built-in pipeline.
const (
	// TransformSeed is the sentinel transform of the root node. It is never
	// registered; exactly one node per session carries it.
	TransformSeed = "Seed"

	TransformMirror    = "Mirror"
	TransformInvert    = "Invert"
	TransformSymbolize = "Symbolize"
	TransformAbstract  = "Abstract"
	TransformGround    = "Ground"
)

// Edge relation kinds.
const (
	// RelationTransformsTo is the default relation between a parent node and
	// a node created (or re-confirmed) from it.
	RelationTransformsTo = "transforms_to"
)

// Safety level tags recorded in SessionMeta.
const (
	SafetyLight    = "light"
	SafetyClinical = "clinical"
)

// DefaultPipeline is the canonical transform order.
func DefaultPipeline() []string {
	return []string{
		TransformMirror,
		TransformInvert,
		TransformSymbolize,
		TransformAbstract,
		TransformGround,
	}
}
