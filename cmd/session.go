package cmd

import (
	"fmt"

	"github.com/nikogura/cv-tailor/pkg/config"
	"github.com/nikogura/cv-tailor/pkg/logger"
	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is what every subcommand loads before it touches a job posting.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	profile profile.Profile
}

// overrides are the command-line values that win over the config file when their
// flag was given explicitly.
type overrides struct {
	company   string
	role      string
	outputDir string
	profile   string
	skipPDF   bool
	json      bool
	debug     bool
}

func loadSession(cmd *cobra.Command, o overrides) (s session, err error) {
	s.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return s, err
	}

	applyOverrides(&s.cfg, o, cmd.Flags().Changed)

	s.logger, err = logger.New(s.cfg.Logging.JSON, s.cfg.Logging.Debug)
	if err != nil {
		return s, err
	}

	s.profile, err = loadProfile(s.cfg.ProfileLocation)
	if err != nil {
		return s, err
	}

	return s, err
}

func applyOverrides(cfg *config.Config, o overrides, changed func(name string) bool) {
	if changed("company") {
		cfg.Company = o.company
	}
	if changed("role") {
		cfg.Role = o.role
	}
	if changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if changed("profile") {
		cfg.ProfileLocation = o.profile
	}
	if changed("skip-pdf") {
		cfg.Typesetter.Skip = o.skipPDF
	}
	if changed("json") {
		cfg.Logging.JSON = o.json
	}
	if changed("debug") {
		cfg.Logging.Debug = o.debug
	}
}

func loadProfile(path string) (p profile.Profile, err error) {
	if path == "" {
		if getVerbose() {
			fmt.Println("Using the built-in sample profile")
		}

		p, err = profile.Default()
		return p, err
	}

	if getVerbose() {
		fmt.Printf("Loading profile from: %s\n", path)
	}

	p, err = profile.Load(path)
	if err != nil {
		return p, err
	}

	if getVerbose() {
		fmt.Printf("Profile loaded: %s (%d experience entries)\n", p.Name, len(p.Experience))
	}

	return p, err
}
