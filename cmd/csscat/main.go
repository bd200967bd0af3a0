// Command csscat parses a stylesheet and prints its node tree. It exists to
// make the library's output visible from a terminal; nothing it does is
// part of the parsing core.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_parser"
)

var (
	flagNoColor      bool
	flagKeepComments bool
	flagRawValues    bool
	flagRawSelectors bool
	flagRawPreludes  bool
	flagStat         bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "csscat [file]",
		Short: "Parse a stylesheet and print its node tree",
		Long: `csscat parses a stylesheet (from a file argument, or stdin when
none is given) and prints the resulting node tree, one line per node,
indented by depth.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCat,
	}

	root.Flags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI styling of the printed tree")
	root.Flags().BoolVar(&flagKeepComments, "keep-comments", false, "retain comment tokens instead of discarding them")
	root.Flags().BoolVar(&flagRawValues, "raw-values", false, "leave declaration values as unparsed text")
	root.Flags().BoolVar(&flagRawSelectors, "raw-selectors", false, "leave selectors as unparsed text")
	root.Flags().BoolVar(&flagRawPreludes, "raw-preludes", false, "leave at-rule preludes as unparsed text")
	root.Flags().BoolVar(&flagStat, "stat", false, "print a node-count summary instead of the tree")

	return root
}

func runCat(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	options := css_parser.Options{
		SkipComments:        !flagKeepComments,
		ParseValues:         !flagRawValues,
		ParseSelectors:      !flagRawSelectors,
		ParseAtRulePreludes: !flagRawPreludes,
	}

	traceID := uuid.New()
	start := time.Now()
	root := css_parser.Parse(source, options)
	elapsed := time.Since(start)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s  source=%s  trace=%s  parsed in %s\n",
		headerStyle().Render("csscat"), name, traceID, elapsed)

	if flagStat {
		printStats(w, root)
		return nil
	}

	printTree(w, root, 0, !flagNoColor)
	return nil
}

func readSource(args []string) (source, name string, err error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(b), args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(b), "<stdin>", nil
}

func printStats(w io.Writer, root css_ast.Handle) {
	counts := make(map[css_ast.NodeKind]int)
	var count func(h css_ast.Handle)
	count = func(h css_ast.Handle) {
		counts[h.Kind()]++
		for c := h.FirstChild(); !c.IsNull(); c = c.NextSibling() {
			count(c)
		}
	}
	count(root)

	total := 0
	kinds := make([]css_ast.NodeKind, 0, len(counts))
	for k, n := range counts {
		total += n
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Fprintf(w, "%d nodes\n", total)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-24s %d\n", k, counts[k])
	}
}
