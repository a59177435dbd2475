// Package mono overlays the built-in collection types of a Unity IL2CPP
// (or Mono) runtime onto memory in the current process.
//
// The types in this package are never constructed in Go. They describe
// the layout of objects owned by the foreign runtime, and are obtained by
// reinterpreting an address:
//
//	// public class Player {
//	//     public string username;      // 0xC8
//	//     public List`1<int> perks;    // 0xD0
//	// }
//	username := mono.StringAt(memory.Read[uintptr](player + 0xc8))
//	perks := mono.ListAt[int32](memory.Read[uintptr](player + 0xd0))
//
// Element types are up to the caller. Use uintptr (or a pointer to an
// overlay type, such as *String) for arrays of objects whose layout is
// unknown or not modeled.
//
// Nothing here copies, allocates, or frees runtime memory, and nothing
// checks that an address actually holds the type it is read as. Builds
// with the "monodebug" tag panic on obviously wrong values, such as
// negative lengths or a list whose version goes backwards.
package mono
