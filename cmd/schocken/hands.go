package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/lox/schocken/dice"
)

// HandsCmd lists every hand from best to worst.
type HandsCmd struct {
	JSON bool `name:"json" help:"Print the hands as JSON"`
}

type handInfo struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Chips  int    `json:"chips"`
	Values []int  `json:"values"`
}

func (cmd *HandsCmd) Run() error {
	return cmd.write(os.Stdout)
}

func (cmd *HandsCmd) write(w io.Writer) error {
	hands := listHands()
	if cmd.JSON {
		return writeJSON(w, hands)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("hand"),
		headerStyle.Render("kind"),
		headerStyle.Render("chips"),
		headerStyle.Render("dice"))
	for _, h := range hands {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%v\n", h.Rank, handStyle.Render(h.Name), h.Kind, h.Chips, h.Values)
	}
	return tw.Flush()
}

func listHands() []handInfo {
	all := dice.AllHands()
	slices.Reverse(all)
	out := make([]handInfo, 0, len(all))
	for i, h := range all {
		c := h.Category()
		out = append(out, handInfo{
			Rank:   i + 1,
			Name:   c.String(),
			Kind:   c.Kind().String(),
			Chips:  c.Chips(),
			Values: h.Values(),
		})
	}
	return out
}
