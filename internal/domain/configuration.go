package domain

// Configuration names a compiler and graphics-API pairing, e.g. "gcc-vulkan".
// It doubles as the name of the build-system preset used to configure it.
type Configuration string

// String returns the configuration name.
func (c Configuration) String() string {
	return string(c)
}
