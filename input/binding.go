package input

// TargetKind discriminates what a binding resolves to.
type TargetKind uint8

const (
	TargetAction TargetKind = iota
	TargetAxis
)

// Target names the logical action or axis a binding resolves to.
type Target struct {
	Kind TargetKind
	Name string
}

func ActionTarget(name string) Target {
	return Target{Kind: TargetAction, Name: name}
}

func AxisTarget(name string) Target {
	return Target{Kind: TargetAxis, Name: name}
}

// Binding ties one physical source to one logical target within a named
// context.
type Binding struct {
	Context string
	Source  Source
	Target  Target
}
