package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	StateDir() (string, error)
	// ManDir is the user's man1 directory, outside the application directories.
	ManDir() (string, error)
}
