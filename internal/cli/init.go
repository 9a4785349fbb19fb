package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/spinwheel/internal/config"
	"github.com/rileyhilliard/spinwheel/internal/errors"
	"github.com/rileyhilliard/spinwheel/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file; empty means ./.wheel.yaml
	Global         bool   // Write ~/.config/wheel/config.yaml instead
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
}

var (
	initForce  bool
	initGlobal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .wheel.yaml",
	Long: `Create a config file with every setting at its default value.

By default the file is written to the current directory. Use --global to
write ~/.config/wheel/config.yaml instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Global:    initGlobal,
			Overwrite: initForce,
			// a piped stdin can't answer the overwrite prompt
			NonInteractive: !isInteractive(),
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config in ~/.config/wheel")
}

// Init writes the default config file.
func Init(opts InitOptions, out io.Writer) error {
	configPath, err := initPath(opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to create directory for %s", configPath),
			"Check directory permissions")
	}
	if err := config.WriteDefault(configPath); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  wheel            - Spin the wheel")
	fmt.Fprintln(out, "  wheel simulate   - Spin headlessly")
	return nil
}

func initPath(opts InitOptions) (string, error) {
	if opts.Path != "" {
		return opts.Path, nil
	}
	if !opts.Global {
		return filepath.Join(".", config.ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set $HOME or write a local config without --global")
	}
	return filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), nil
}
