package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd manages the CLI-local settings file (~/.stivalg.yml by
// default): default directories for atlases and output tracks.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "show or initialize the local settings file",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "print the current local settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := defaultSettingsPath()
		if err != nil {
			return err
		}
		s, err := loadSettings(path)
		if err != nil {
			return err
		}
		fmt.Printf("atlas_dir: %s\n", s.AtlasDir)
		fmt.Printf("output_dir: %s\n", s.OutputDir)
		return nil
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "write a default local settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := defaultSettingsPath()
		if err != nil {
			return err
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted:", err)
			}
			return nil
		}
		if err := saveSettings(path, defaultSettings()); err != nil {
			return err
		}
		fmt.Printf("local settings written to %q\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
}
