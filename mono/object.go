package mono

import "unsafe"

// Object is the header at the start of every managed heap object.
type Object struct {
	klass   uintptr
	monitor uintptr
}

// Class returns the address of the object's class descriptor.
func (o *Object) Class() uintptr {
	return o.klass
}

// Monitor returns the address of the object's sync block, which is
// zero unless the object has been locked.
func (o *Object) Monitor() uintptr {
	return o.monitor
}

// ObjectHeaderSize is the size of Object, which is also the offset of
// the first field of any class instance.
const ObjectHeaderSize = unsafe.Sizeof(Object{})
