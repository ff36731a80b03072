// Package filesystem provides the swappable afero backend behind every file read and write.
//
// Commands run against the OS filesystem. Tests switch to an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs installs a fresh in-memory backend.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
