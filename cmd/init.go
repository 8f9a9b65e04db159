package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikogura/cv-tailor/pkg/config"
	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and a sample profile",
	Long: `Write a config file holding the default settings and, next to it, a sample
profile.yaml to edit with your own experience.

An existing config file is never overwritten. An existing profile is kept.

Example:
  cv-tailor init
  cv-tailor init --config ./cv-tailor.yaml`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	configPath := getConfigFile()
	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	profilePath := filepath.Join(filepath.Dir(configPath), "profile.yaml")

	var profileWritten bool
	configPath, profileWritten, err = initWorkspace(configPath, profilePath)
	if err != nil {
		return err
	}

	fmt.Printf("Config written to: %s\n", configPath)
	if profileWritten {
		fmt.Printf("Sample profile written to: %s\n", profilePath)
	} else {
		fmt.Printf("Keeping existing profile: %s\n", profilePath)
	}

	return err
}

// initWorkspace writes the config and, unless one is already there, the sample profile.
func initWorkspace(configPath, profilePath string) (path string, profileWritten bool, err error) {
	path, err = config.InitConfig(configPath, profilePath)
	if err != nil {
		err = errors.Wrap(err, "failed to initialise config")
		return path, profileWritten, err
	}

	_, statErr := os.Stat(profilePath)
	if statErr == nil {
		return path, profileWritten, err
	}

	err = profile.WriteDefault(profilePath)
	if err != nil {
		return path, profileWritten, err
	}

	profileWritten = true
	return path, profileWritten, err
}
