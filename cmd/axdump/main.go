// axdump - inspect CBOR-encoded accessibility tree updates
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/axtree/ax"
	"github.com/chazu/axtree/ax/wire"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("axdump")

func main() {
	configPath := flag.String("config", "axdump.toml", "Render configuration file")
	stats := flag.Bool("stats", false, "Print node and class statistics")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: axdump [options] update.cbor [update.cbor...]\n\n")
		fmt.Fprintf(os.Stderr, "Applies the given tree updates in order and prints the resulting tree.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  axdump snapshot.cbor           # Print the tree outline\n")
		fmt.Fprintf(os.Stderr, "  axdump -stats base.cbor d.cbor # Apply base + delta, show class sharing\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var tree *ax.Tree
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		update, err := wire.UnmarshalUpdate(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
		if tree == nil {
			tree = ax.NewTreeWithID(update.TreeID)
		}
		if err := wire.Apply(tree, update); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
		log.Infof("applied %s: %d nodes, %d removals", path, len(update.Nodes), len(update.Removals))
	}

	printTree(tree, &cfg.Render)

	if *stats {
		fmt.Printf("\n%d nodes, %d distinct classes\n", tree.Len(), tree.Interner().Len())
	}
}

func printTree(t *ax.Tree, r *Render) {
	if t.Root() == 0 {
		log.Warning("update declared no root; nothing to print")
		return
	}
	t.Walk(func(n *ax.Node, depth int) bool {
		if r.MaxDepth > 0 && depth >= r.MaxDepth {
			return false // prune: don't descend past the configured depth
		}
		fmt.Printf("%s%s", strings.Repeat(r.Indent, depth), describe(n, r))
		fmt.Println()
		return true
	})
}

// describe renders one node line: role, id, label/text, then any
// configured extras.
func describe(n *ax.Node, r *Render) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d", n.Role(), n.ID())

	if v, ok := n.Get(ax.KindLabel); ok {
		if s, err := v.Str(); err == nil {
			fmt.Fprintf(&b, " %q", s)
		}
	} else if v, ok := n.Get(ax.KindText); ok {
		if s, err := v.Str(); err == nil {
			fmt.Fprintf(&b, " %q", s)
		}
	}

	if r.ShowBounds {
		if v, ok := n.Get(ax.KindBounds); ok {
			if rect, err := v.Rect(); err == nil {
				fmt.Fprintf(&b, " %s", rect)
			}
		}
	}

	for _, name := range r.Properties {
		for k := ax.PropertyKind(0); k < ax.NumPropertyKinds; k++ {
			if k.String() != name {
				continue
			}
			if v, ok := n.Get(k); ok {
				fmt.Fprintf(&b, " %s=%s", k, v)
			}
		}
	}

	if !n.Actions().IsEmpty() {
		fmt.Fprintf(&b, " %s", n.Actions())
	}
	return b.String()
}
