package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels/formats"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export [level]",
	Short: "Write a level as a YAML layout",
	Long: `Convert a level into the YAML glyph layout used by level packs.

Raw .bin/.lvl assets given with --level-file become editable text.

Examples:
  rocks export 01-cavern
  rocks export --level-file ./maps/mine.bin -o mine.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := resolveLevel(cfg, args)
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		return exportLevel(cmd.OutOrStdout(), src)
	}

	f, err := os.Create(flagExportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagExportOut, err)
	}
	if err := exportLevel(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportLevel(w io.Writer, src levelSource) error {
	out, err := formats.MarshalYAML(formats.Level{
		ID:   src.ID,
		Name: src.Title,
		Data: src.Data,
	})
	if err != nil {
		return fmt.Errorf("exporting %s: %w", src.ID, err)
	}
	_, err = w.Write(out)
	return err
}
