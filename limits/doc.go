// Package limits loads a link.Context's resource limits from a TOML file,
// falling back to defaults typical of a desktop OpenGL 3.3 implementation
// when no file is given.
package limits
