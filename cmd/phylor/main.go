// Command phylor resolves phyloreferences - OWL classes that formally
// define clades - against phylogenies and reports which tree nodes each
// clade definition matched.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coolbeans/phylor/pkg/label"
	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/reason"
	"github.com/coolbeans/phylor/pkg/resolve"
	"github.com/coolbeans/phylor/pkg/store"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "phylor",
		Short: "Phyloreference resolver",
		Long: `Phylor resolves phyloreferences against phylogenies.

A phyloreference is an OWL class whose membership criteria formally
define a clade: an ancestor node and all of its descendants. Phylor
loads an ontology containing phyloreferences and phylogeny nodes,
classifies it, and reports which nodes each phyloreference matched.

Input can be RDF/XML or JSON-LD; reports are written as JSON.`,
		Version: version,
	}

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(labelsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputFlags is the input selection shared by subcommands.
type inputFlags struct {
	input  string
	jsonld bool
	prefix string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "",
		"Input ontology in RDF/XML or JSON-LD ('-' reads standard input; can also be given as a positional argument)")
	cmd.Flags().BoolVarP(&f.jsonld, "jsonld", "j", false,
		"Treat the input as JSON-LD regardless of its extension (*.json and *.jsonld are detected automatically)")
	cmd.Flags().StringVar(&f.prefix, "prefix", store.DefaultURIPrefix,
		"Namespace prefix stripped from identifiers in the output")
}

// load opens and parses the selected ontology, reporting progress on
// standard error so standard output stays reserved for the JSON report.
func (f *inputFlags) load(args []string) (*ontology.Ontology, error) {
	input := f.input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return nil, fmt.Errorf("no input ontology specified (use '-i input.owl')")
	}

	fmt.Fprintf(os.Stderr, "Input: %s\n", input)

	opts := []ontology.LoadOption{ontology.WithBase(f.prefix)}
	if f.jsonld {
		opts = append(opts, ontology.WithJSONLD())
	}

	ont, err := ontology.Load(input, opts...)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "Loaded ontology: %d triples\n", ont.Count())
	return ont, nil
}

func resolveCmd() *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "resolve [input]",
		Short: "Resolve phyloreferences and report matched nodes as JSON",
		Long: `Resolve every phyloreference in the input ontology and report the
phylogeny nodes matched by each clade definition.

The report is a JSON object on standard output mapping each
phyloreference to an array of matched node identifiers, with the
configured namespace prefix stripped from both. Any failure is
reported on standard error with a non-zero exit status and no JSON
output.

Example:
  phylor resolve -i phylorefs.owl
  phylor resolve --jsonld --prefix http://phylo.example/tree - < input.jsonld`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := flags.load(args)
			if err != nil {
				return err
			}

			report, err := resolve.BuildReport(ont, reason.StructuralFactory, resolve.WithPrefix(flags.prefix))
			if err != nil {
				return err
			}

			return writeJSON(report)
		},
	}

	flags.register(cmd)
	return cmd
}

func labelsCmd() *cobra.Command {
	flags := &inputFlags{}
	var lang string

	cmd := &cobra.Command{
		Use:   "labels [input]",
		Short: "List phyloreference labels for a language",
		Long: `List the labels of every phyloreference in the input ontology for
the requested language tag. Matching is exact: a label tagged "en" is
not returned for "en-US", and untagged labels are only returned when
the requested tag is empty.

Example:
  phylor labels -i phylorefs.owl --lang en`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := flags.load(args)
			if err != nil {
				return err
			}

			reasoner, err := reason.StructuralFactory(ont)
			if err != nil {
				return fmt.Errorf("create reasoner: %w", err)
			}
			defer func() { _ = reasoner.Dispose() }()

			phylorefs, err := resolve.ListPhyloreferences(ont, reasoner)
			if err != nil {
				return err
			}

			labels := make(map[string][]string, len(phylorefs))
			for _, phyloref := range phylorefs {
				labels[phyloref] = label.Select(ont, phyloref, lang)
			}

			return writeJSON(labels)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&lang, "lang", "en", "Language tag to select labels for (empty selects untagged labels)")
	return cmd
}

// writeJSON prints a value as a single JSON document on standard output.
func writeJSON(value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
