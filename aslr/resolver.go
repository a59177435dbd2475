package aslr

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
)

// NewResolver returns a *Resolver for the main executable.
func NewResolver() *Resolver {
	return &Resolver{Source: MainImage()}
}

// Resolver converts link-time offsets into runtime addresses.
//
// The bias is queried from Source on each call rather than being
// stored, so a Resolver is correct regardless of when it was created
// relative to the image being loaded.
type Resolver struct {
	// Source reports the load bias. It must be non-nil.
	Source BiasSource
}

// ResolveOrExit calls Resolve. If the bias cannot be determined,
// this is treated as a fatal misconfiguration and DefaultExitFn
// is invoked.
func (o *Resolver) ResolveOrExit(offset uint64) uintptr {
	addr, err := o.Resolve(offset)
	if err != nil {
		DefaultExitFn(err)
	}

	return addr
}

// Resolve returns offset plus the current load bias. It does not check
// that the resulting address is mapped. An offset wider than a pointer
// is an error.
func (o *Resolver) Resolve(offset uint64) (uintptr, error) {
	if offset > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("offset 0x%x does not fit in a %d-bit address", offset,
			unsafe.Sizeof(uintptr(0))*8)
	}

	bias, err := o.Source.LoadBias()
	if err != nil {
		return 0, fmt.Errorf("failed to get load bias from %v - %w", o.Source, err)
	}

	addr := uintptr(offset) + bias

	Logger().Debug("resolved offset",
		zap.Stringer("source", sourceName{o.Source}),
		zap.Uint64("offset", offset),
		zap.Uintptr("bias", bias),
		zap.Uintptr("address", addr))

	return addr, nil
}

type sourceName struct {
	source BiasSource
}

func (o sourceName) String() string {
	if s, ok := o.source.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", o.source)
}
