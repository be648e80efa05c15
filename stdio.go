// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package cbdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

// stats returns information about the node table
func (b *BDD) stats() string {
	capacity := b.storage.capacity()
	res := fmt.Sprintf("Capacity:   %d\n", capacity)
	res += fmt.Sprintf("Buckets:    %d\n", len(b.buckets))
	res += fmt.Sprintf("Cache:      %d\n", b.cache.len())
	res += fmt.Sprintf("Last index: %d\n", b.storage.lastIndex)
	r := (float64(b.storage.realSize) / float64(capacity)) * 100
	res += fmt.Sprintf("Used:       %d  (%.3g %%)", b.storage.realSize, r)
	return res
}

func (b *BDD) gcstats() string {
	res := fmt.Sprintf("# of GC:    %d", len(b.history))
	reclaimed := 0
	for _, g := range b.history {
		reclaimed += g.Before - g.After
	}
	if len(b.history) != 0 {
		res += fmt.Sprintf("\nReclaimed:  %d", reclaimed)
	}
	return res
}

// Stats returns a textual representation of the BDD statistics: the use of
// the node table, the garbage collections and the caches.
func (b *BDD) Stats() string {
	sep := "\n==============\n"
	return b.stats() + sep + b.gcstats() + sep + b.cacheStat.String()
}

// ******************************************************************************************************

// Print returns a one-line description of the root node of r.
func (b *BDD) Print(r Ref) string {
	b.checkref(r, "Print")
	if r.IsConst() {
		return r.String()
	}
	n := r.index()
	return fmt.Sprintf("%s (x%d, %s, %s)", r, b.storage.variable[n], b.storage.low[n], b.storage.high[n])
}

// Bracket returns a textual representation of f using nested if-then-else
// expressions, such as (x1 ? 1 : ~(x2 ? 1 : 0)). A ~ denotes a complemented
// edge. Shared nodes are printed each time they occur, so the result can be
// exponentially larger than the BDD.
func (b *BDD) Bracket(f Ref) string {
	b.checkref(f, "Bracket")
	var sb strings.Builder
	b.bracket(&sb, f)
	return sb.String()
}

func (b *BDD) bracket(sb *strings.Builder, r Ref) {
	if r.IsConst() {
		sb.WriteString(r.String())
		return
	}
	if r < 0 {
		sb.WriteByte('~')
	}
	n := r.index()
	fmt.Fprintf(sb, "(x%d ? ", b.storage.variable[n])
	b.bracket(sb, b.storage.high[n])
	sb.WriteString(" : ")
	b.bracket(sb, b.storage.low[n])
	sb.WriteByte(')')
}

// Tree returns a drawing of the decision tree obtained by unfolding f. Each
// node is labelled with its variable and reference.
func (b *BDD) Tree(f Ref) string {
	b.checkref(f, "Tree")
	tree := treeprint.New()
	tree.SetValue(b.treelabel(f))
	b.tree(tree, f)
	return tree.String()
}

func (b *BDD) treelabel(r Ref) string {
	if r.IsConst() {
		return r.String()
	}
	return fmt.Sprintf("x%d %s", b.level(r), r)
}

func (b *BDD) tree(tree treeprint.Tree, r Ref) {
	if r.IsConst() {
		return
	}
	low, high := b.topCofactors(r, b.level(r))
	b.tree(tree.AddMetaBranch("1", b.treelabel(high)), high)
	b.tree(tree.AddMetaBranch("0", b.treelabel(low)), low)
}

// ******************************************************************************************************

// PrintDot writes a graph-like description of the BDDs with the given roots
// using the DOT format. Low edges are dotted, and complemented edges are red
// and dashed. Each root gets its own entry point, labelled with its position
// in roots.
func (b *BDD) PrintDot(w io.Writer, roots ...Ref) error {
	for _, r := range roots {
		b.checkref(r, "PrintDot")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	for k, r := range roots {
		fmt.Fprintf(bw, "r%d [shape=plaintext, label=\"f%d\"];\n", k, k)
		fmt.Fprintf(bw, "r%d -> %d%s;\n", k, r.index(), dotedge("filled", r < 0))
	}
	err := b.Allnodes(func(id, variable int, low, high Ref) error {
		fmt.Fprintf(bw, "%d %s\n", id, dotlabel(id, variable))
		fmt.Fprintf(bw, "%d -> %d%s;\n", id, low.index(), dotedge("dotted", low < 0))
		fmt.Fprintf(bw, "%d -> %d%s;\n", id, high.index(), dotedge("filled", false))
		return nil
	}, roots...)
	if err != nil {
		return err
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// FPrintDot is like PrintDot but writes its output in a file. We use the
// standard output when filename is "-".
func (b *BDD) FPrintDot(filename string, roots ...Ref) error {
	if filename == "-" {
		return b.PrintDot(os.Stdout, roots...)
	}
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "cannot create DOT file")
	}
	defer out.Close()
	return b.PrintDot(out, roots...)
}

func dotedge(style string, negated bool) string {
	if negated {
		return " [style=dashed, color=red]"
	}
	return fmt.Sprintf(" [style=%s]", style)
}

func dotlabel(a int, b int) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}
