package invoke

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"gitlab.com/stephen-fox/monokit/aslr"
	"gitlab.com/stephen-fox/monokit/memory"
	"gitlab.com/stephen-fox/monokit/mono"
	"go.uber.org/zap"
)

// Config configures an Invoker.
type Config struct {
	// Resolver rebases Offsets onto the running image.
	Resolver *aslr.Resolver

	// Offsets are the link-time offsets of the runtime's functions.
	Offsets Offsets

	// OptCaller performs the native calls. NativeCaller is
	// used if it is nil.
	OptCaller Caller
}

func (o Config) validate() error {
	if o.Resolver == nil {
		return errors.New("resolver cannot be nil")
	}

	if o.Resolver.Source == nil {
		return errors.New("resolver's bias source cannot be nil")
	}

	return nil
}

// NewInvokerOrExit calls NewInvoker. If an error occurs,
// DefaultExitFn is invoked.
func NewInvokerOrExit(config Config) *Invoker {
	inv, err := NewInvoker(config)
	if err != nil {
		DefaultExitFn(fmt.Errorf("failed to create invoker - %w", err))
	}

	return inv
}

// NewInvoker creates a new *Invoker.
func NewInvoker(config Config) (*Invoker, error) {
	err := config.validate()
	if err != nil {
		return nil, err
	}

	caller := config.OptCaller
	if caller == nil {
		caller = NativeCaller{}
	}

	return &Invoker{
		resolver: config.Resolver,
		offsets:  config.Offsets,
		caller:   caller,
	}, nil
}

// Invoker calls the runtime's string constructor and array allocator.
// It is the only part of monokit that calls into the runtime.
type Invoker struct {
	resolver *aslr.Resolver
	offsets  Offsets
	caller   Caller
}

// NewStringOrExit calls NewString. If an error occurs,
// DefaultExitFn is invoked.
func (o *Invoker) NewStringOrExit(text string) *mono.String {
	str, err := o.NewString(text)
	if err != nil {
		DefaultExitFn(err)
	}

	return str
}

// NewString creates a managed string from text by calling
// String.CreateString(sbyte*) with a null receiver:
//
//	string CreateString(void *this, const char *value)
//
// text is passed as a NUL-terminated copy, so the string ends at the
// first NUL byte in text, if there is one. The new string is owned by
// the runtime's garbage collector.
func (o *Invoker) NewString(text string) (*mono.String, error) {
	fn, err := o.resolver.Resolve(o.offsets.StringConstructor)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve string constructor - %w", err)
	}

	cString := append([]byte(text), 0)

	Logger().Debug("calling string constructor",
		zap.Uintptr("fn", fn),
		zap.Int("text_len", len(text)))

	strAddr := o.caller.Call(fn, 0, uintptr(unsafe.Pointer(&cString[0])))

	runtime.KeepAlive(cString)

	Logger().Debug("string constructor returned",
		zap.Uintptr("string", strAddr))

	return mono.StringAt(strAddr), nil
}

// ArrayClassOrExit calls ArrayClass. If an error occurs,
// DefaultExitFn is invoked.
func (o *Invoker) ArrayClassOrExit() uintptr {
	klass, err := o.ArrayClass()
	if err != nil {
		DefaultExitFn(err)
	}

	return klass
}

// ArrayClass returns the address of the class descriptor that
// NewArray passes to the array allocator. It is found by
// dereferencing the array class slot twice.
func (o *Invoker) ArrayClass() (uintptr, error) {
	slot, err := o.resolver.Resolve(o.offsets.ArrayClassSlot)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve array class slot - %w", err)
	}

	return memory.Deref(slot, 0, 0), nil
}

// NewArrayOrExit calls NewArray. If an error occurs,
// DefaultExitFn is invoked.
func NewArrayOrExit[T any](inv *Invoker, length int32) *mono.Array[T] {
	arr, err := NewArray[T](inv, length)
	if err != nil {
		DefaultExitFn(err)
	}

	return arr
}

// NewArray creates a managed array with room for length elements by
// calling the runtime's array allocator:
//
//	Il2CppArray *allocate(Il2CppClass *klass, il2cpp_array_size_t length)
//
// The element type of the new array is determined by the array class
// slot, not by T. The caller is responsible for picking a T that
// matches it. The new array is owned by the runtime's garbage collector.
func NewArray[T any](inv *Invoker, length int32) (*mono.Array[T], error) {
	klass, err := inv.ArrayClass()
	if err != nil {
		return nil, err
	}

	fn, err := inv.resolver.Resolve(inv.offsets.ArrayAllocator)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve array allocator - %w", err)
	}

	Logger().Debug("calling array allocator",
		zap.Uintptr("fn", fn),
		zap.Uintptr("class", klass),
		zap.Int32("length", length))

	arrAddr := inv.caller.Call(fn, klass, uintptr(length))

	Logger().Debug("array allocator returned",
		zap.Uintptr("array", arrAddr))

	return mono.ArrayAt[T](arrAddr), nil
}
