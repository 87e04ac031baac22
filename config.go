package serverctl

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultConfig is the layout used by the toy HTTP server project.
var DefaultConfig = Config{
	BuildDir:   "build",
	SourceDir:  "..",
	Executable: "toy_http_server",
	Image:      "toy_http_server_image",
}

// Config stores configuration of serverctl.
type Config struct {
	// BuildDir is the working directory of the native build toolchain. Its existence means the project
	// has been configured.
	BuildDir string

	// SourceDir is the directory containing the project sources, relative to BuildDir.
	SourceDir string

	// Executable is the name of the server binary produced inside BuildDir.
	Executable string

	// Image is the tag of the docker image.
	Image string
}

// Validate verifies that the config is usable.
func (c Config) Validate() error {
	switch {
	case c.BuildDir == "":
		return errors.New("build directory must be set")
	case c.SourceDir == "":
		return errors.New("source directory must be set")
	case c.Executable == "":
		return errors.New("executable must be set")
	case filepath.Base(c.Executable) != c.Executable:
		return errors.Errorf("executable must be a file name, got %q", c.Executable)
	case c.Image == "":
		return errors.New("image must be set")
	}
	return nil
}

// ExecutablePath returns the path of the server binary.
// The path always contains a separator so it is never looked up in PATH.
func (c Config) ExecutablePath() string {
	path := filepath.Join(c.BuildDir, c.Executable)
	if filepath.Base(path) == path {
		path = "." + string(filepath.Separator) + path
	}
	return path
}
