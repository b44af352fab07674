package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csskit.yaml config file",
	Long:  `Create a .csskit.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".csskit.yaml"); err == nil && !force {
			return fmt.Errorf(".csskit.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".csskit.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .csskit.yaml")
		return nil
	},
}

const defaultConfig = `# csskit configuration

# Shared settings
verbose: false

# Build settings
build:
  patterns:
    - "styles/**/*.css.yaml"
  out-dir: public/css
  check: true              # run the syntax checker on compiled output

# Check settings
check:
  patterns:
    - "public/css/**/*.css"
  strict: false            # strict: any issue fails; default: errors only
  print-lines: true
  print-check-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
