package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

var (
	int16Ops      = &Registry[Ops[int16]]{}
	int32Ops      = &Registry[Ops[int32]]{}
	float32Ops    = &Registry[Ops[float32]]{}
	float64Ops    = &Registry[Ops[float64]]{}
	complex64Ops  = &Registry[Ops[complex64]]{}
	complex128Ops = &Registry[Ops[complex128]]{}

	// Conv is the registry for conversion kernels.
	Conv = &Registry[ConvOps]{}
)

// RegistryFor returns the process-wide registry for element type T.
func RegistryFor[T Element]() *Registry[Ops[T]] {
	var (
		zero T
		reg  any
	)
	switch any(zero).(type) {
	case int16:
		reg = int16Ops
	case int32:
		reg = int32Ops
	case float32:
		reg = float32Ops
	case float64:
		reg = float64Ops
	case complex64:
		reg = complex64Ops
	case complex128:
		reg = complex128Ops
	}
	return reg.(*Registry[Ops[T]])
}

// Register adds a provider variant for element type T.
func Register[T Element](entry Entry[Ops[T]]) {
	RegistryFor[T]().Register(entry)
}

// Provider returns the resolved kernel table for T on the current CPU.
func Provider[T Element]() Ops[T] {
	return RegistryFor[T]().Resolve(cpu.DetectFeatures())
}

// Entries lists the provider variants registered for T.
func Entries[T Element]() []Entry[Ops[T]] {
	return RegistryFor[T]().ListEntries()
}

// RegisterConversions adds a conversion provider variant.
func RegisterConversions(entry Entry[ConvOps]) {
	Conv.Register(entry)
}

// Conversions returns the resolved conversion table for the current CPU.
func Conversions() ConvOps {
	return Conv.Resolve(cpu.DetectFeatures())
}
