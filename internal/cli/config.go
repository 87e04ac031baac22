package cli

import (
	"github.com/pkg/errors"
	"github.com/ridge/must"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/outofforest/serverctl"
)

const (
	flagConfig     = "config"
	flagBuildDir   = "build-dir"
	flagSourceDir  = "source-dir"
	flagExecutable = "executable"
	flagImage      = "image"

	// defaultConfigName is looked up in the current directory when --config is not set.
	defaultConfigName = ".serverctl"
)

func addConfigFlags(flags *pflag.FlagSet) {
	defaults := serverctl.DefaultConfig

	flags.String(flagConfig, "", "Config file (default is "+defaultConfigName+".yaml if present)")
	flags.String(flagBuildDir, defaults.BuildDir, "Working directory of the native build toolchain")
	flags.String(flagSourceDir, defaults.SourceDir, "Project sources, relative to the build directory")
	flags.String(flagExecutable, defaults.Executable, "Name of the server binary inside the build directory")
	flags.String(flagImage, defaults.Image, "Tag of the docker image")
}

// loadConfig resolves the config from flag defaults, the config file and flags set explicitly,
// in this order. Environment is not consulted.
func loadConfig(flags *pflag.FlagSet) (serverctl.Config, error) {
	v := viper.New()
	for _, name := range []string{flagBuildDir, flagSourceDir, flagExecutable, flagImage} {
		must.OK(v.BindPFlag(name, flags.Lookup(name)))
	}

	configFile := must.String(flags.GetString(flagConfig))
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return serverctl.Config{}, errors.Wrap(err, "reading config file failed")
		}
	}

	config := serverctl.Config{
		BuildDir:   v.GetString(flagBuildDir),
		SourceDir:  v.GetString(flagSourceDir),
		Executable: v.GetString(flagExecutable),
		Image:      v.GetString(flagImage),
	}
	if err := config.Validate(); err != nil {
		return serverctl.Config{}, err
	}
	return config, nil
}
