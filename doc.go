// Package monokit provides functionality for inspecting a Unity IL2CPP
// (or Mono) runtime from code running inside the same process.
//
// APIs are separated into subpackages, and documented accordingly:
//	- aslr rebases link-time offsets onto the running image
//	- mono overlays the runtime's arrays, strings, lists, and dictionaries
//	- invoke calls runtime exports found at operator-supplied offsets
//	- obscured decodes and encodes Anti-Cheat Toolkit obscured scalars
//	- memory reads and writes raw addresses and organizes offsets
//
// Nothing in this module validates that an address holds what the caller
// says it holds. Overlays are applied to live runtime memory as-is.
//
// For scripting convenience, "OrExit" functions and methods are provided.
// Any errors encountered by these functions are treated as fatal. In such
// cases, an exit handler function is invoked.
package monokit
