package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunargale/shelfsort/content"
)

// actorSummary is the flattened view of one actor subtree
type actorSummary struct {
	Type      string         `json:"type"`
	Reference string         `json:"reference,omitempty"`
	Slots     int            `json:"slots,omitempty"`
	Match     int            `json:"match,omitempty"`
	Layers    int            `json:"layers,omitempty"`
	Condition string         `json:"condition,omitempty"`
	Inner     *actorSummary  `json:"inner,omitempty"`
	Children  []actorSummary `json:"children,omitempty"`
}

// levelSummary is the inspect output
type levelSummary struct {
	Name      string            `json:"name"`
	Cols      int               `json:"cols"`
	Rows      int               `json:"rows"`
	TimeLimit float64           `json:"time_limit,omitempty"`
	Shelves   int               `json:"shelves"`
	Actors    []actorSummary    `json:"actors"`
	Locks     []content.LockDef `json:"locks,omitempty"`
}

// newInspectCommand creates the inspect command
func newInspectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "inspect <level.yaml>",
		Short:         "Summarize a validated level definition",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}
}

func runInspect(opts *rootOptions, path string, cmd *cobra.Command) error {
	products, err := content.LoadProducts(opts.ProductsPath)
	if err != nil {
		return err
	}
	def, err := content.LoadLevel(path, products)
	if err != nil {
		return err
	}

	sum := summarize(def)
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	printSummary(out, sum)
	return nil
}

func summarize(def *content.LevelDef) levelSummary {
	sum := levelSummary{
		Name:      def.Name,
		Cols:      def.Grid.Cols,
		Rows:      def.Grid.Rows,
		TimeLimit: def.TimeLimit,
		Locks:     def.Locks,
	}
	for i := range def.Actors {
		a := summarizeActor(&def.Actors[i])
		sum.Shelves += countShelves(&a)
		sum.Actors = append(sum.Actors, a)
	}
	return sum
}

func summarizeActor(a *content.ActorDef) actorSummary {
	s := actorSummary{
		Type:      a.Type,
		Reference: a.Reference,
		Slots:     a.SlotCount,
		Match:     a.Match,
		Layers:    len(a.Layers),
	}
	if a.Condition != nil {
		s.Condition = a.Condition.Kind
	}
	if a.Inner != nil {
		inner := summarizeActor(a.Inner)
		s.Inner = &inner
	}
	for i := range a.Children {
		s.Children = append(s.Children, summarizeActor(&a.Children[i]))
	}
	return s
}

func countShelves(a *actorSummary) int {
	if a.Inner != nil {
		return countShelves(a.Inner)
	}
	if len(a.Children) > 0 {
		n := 0
		for i := range a.Children {
			n += countShelves(&a.Children[i])
		}
		return n
	}
	return 1
}

func printSummary(w io.Writer, sum levelSummary) {
	fmt.Fprintf(w, "%s  grid %dx%d  shelves %d", sum.Name, sum.Cols, sum.Rows, sum.Shelves)
	if sum.TimeLimit > 0 {
		fmt.Fprintf(w, "  limit %.0fs", sum.TimeLimit)
	}
	fmt.Fprintln(w)
	for i := range sum.Actors {
		printActor(w, &sum.Actors[i], 1)
	}
	for _, l := range sum.Locks {
		fmt.Fprintf(w, "  lock %s[%d]\n", l.Shelf, l.Slot)
	}
}

func printActor(w io.Writer, a *actorSummary, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s", indent, a.Type)
	if a.Reference != "" {
		fmt.Fprintf(w, " %q", a.Reference)
	}
	if a.Slots > 0 {
		fmt.Fprintf(w, " slots=%d", a.Slots)
	}
	if a.Match > 0 {
		fmt.Fprintf(w, " match=%d", a.Match)
	}
	if a.Layers > 0 {
		fmt.Fprintf(w, " layers=%d", a.Layers)
	}
	if a.Condition != "" {
		fmt.Fprintf(w, " condition=%s", a.Condition)
	}
	fmt.Fprintln(w)
	if a.Inner != nil {
		printActor(w, a.Inner, depth+1)
	}
	for i := range a.Children {
		printActor(w, &a.Children[i], depth+1)
	}
}
