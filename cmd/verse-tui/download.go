package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"verse-tui/internal/config"
	"verse-tui/internal/source"
)

var downloadCmd = &cobra.Command{
	Use:   "download <translation>",
	Short: "Download a bolls.life translation for offline reading",
	Long: `Download a translation archive from bolls.life and store it for the json
source.

Examples:
  verse-tui download KJV
  VERSE_SOURCE_KIND=json VERSE_SOURCE_TRANSLATION=KJV verse-tui`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		translation := strings.ToUpper(args[0])

		fmt.Printf("Downloading %s...\n", translation)
		path, err := source.Download(cmd.Context(), cm.Get().Source.BaseURL, translation, config.TranslationsDir())
		if err != nil {
			return err
		}

		if _, err := source.OpenTranslation(path); err != nil {
			return fmt.Errorf("downloaded file is unusable: %w", err)
		}
		fmt.Printf("Saved %s\n", path)
		fmt.Printf("Read it with source.kind=json and source.translation=%s\n", translation)
		return nil
	},
}
