package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"verse-tui/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cm.Get())
		if err != nil {
			return err
		}

		if file := cm.File(); file != "" {
			fmt.Printf("# %s\n", file)
		} else {
			fmt.Println("# defaults (no config file found)")
		}
		fmt.Print(string(out))
		return nil
	},
}
