package generator

type Generator interface {
	// Generate writes the package sources below out.
	Generate(out string) error
}
