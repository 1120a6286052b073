// ndscenectl inspects and round-trips n-dimensional scene metadata.
//
// It parses an attribute (XML/SVG) or structured (JSON/YAML) document
// into a fresh scene state and re-emits the canonical metadata fragment,
// which is how stored documents are checked and normalized.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndscene/ndscene"
	"github.com/ndscene/ndscene/document"
)

var (
	maxDepth int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "ndscenectl",
	Short: "Inspect and round-trip n-dimensional scene metadata",
	Long: `ndscenectl parses a scene metadata document into a fresh state and
prints the canonical fragment describing the result.

Attribute documents (.xml, .svg) go through the attribute-query parser;
everything else is treated as a structured (JSON/YAML) document.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			ndscene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse a document and print the resulting canonical fragment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		s := ndscene.New(maxDepth)
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".xml", ".svg":
			doc, err := document.ParseXML(data)
			if err != nil {
				return err
			}
			doc.Apply(s)
		default:
			doc, err := document.ParseStructured(data)
			if err != nil {
				return err
			}
			doc.Apply(s)
		}
		s.UpdateMatrix()

		fmt.Fprintln(cmd.OutOrStdout(), s.Fragment())
		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the canonical fragment of a fresh default state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), ndscene.New(maxDepth).Fragment())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&maxDepth, "depth", "d", 4, "maximum scene dimension")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped fields to stderr")
	rootCmd.AddCommand(showCmd, defaultsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
