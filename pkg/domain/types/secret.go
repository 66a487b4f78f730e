package types

// Secret is a credential string. Log handlers configured by stencil mask
// values of this type.
type Secret string

// String returns the raw value.
func (x Secret) String() string { return string(x) }
