package aslr

import "fmt"

// BiasSource reports the load bias of an image.
//
// Implementations are queried every time an offset is resolved.
// They must not cache a value that might be stale.
type BiasSource interface {
	LoadBias() (uintptr, error)
}

// BiasFunc adapts a function to the BiasSource interface.
type BiasFunc func() (uintptr, error)

func (o BiasFunc) LoadBias() (uintptr, error) {
	return o()
}

// Static returns a BiasSource that always reports bias.
func Static(bias uintptr) BiasSource {
	return staticBias(bias)
}

type staticBias uintptr

func (o staticBias) LoadBias() (uintptr, error) {
	return uintptr(o), nil
}

func (o staticBias) String() string {
	return fmt.Sprintf("static(0x%x)", uintptr(o))
}

// MainImage returns a BiasSource for the main executable of the
// current process.
func MainImage() BiasSource {
	return imageBias{}
}

// Image returns a BiasSource for the loaded image whose path ends with
// name, for example "libil2cpp.so" or "UnityFramework". An empty name
// refers to the main executable.
func Image(name string) BiasSource {
	return imageBias{name: name}
}

type imageBias struct {
	name string
}

func (o imageBias) LoadBias() (uintptr, error) {
	if o.name == "" {
		return mainImageBias()
	}

	return namedImageBias(o.name)
}

func (o imageBias) String() string {
	if o.name == "" {
		return "main-image"
	}

	return "image(" + o.name + ")"
}
