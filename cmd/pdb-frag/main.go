// pdb-frag prints the fragment partition of a PDB file's topology, one
// fragment per line, broken on chain changes and sequence number jumps.
package main

import (
	"flag"
	"fmt"

	"github.com/Bio-Otto/mdciao/cmd/util"
	"github.com/Bio-Otto/mdciao/fragments"
	"github.com/Bio-Otto/mdciao/pdb"
)

func init() {
	util.Usage("pdb-file")
}

func main() {
	util.AssertNArg(1)

	entry, err := pdb.New(flag.Arg(0))
	util.Assert(err, "Could not read PDB file '%s'", flag.Arg(0))
	top := entry.Topology()

	parts := fragments.ByResSeq(top)
	fmt.Printf("%s: %d residues in %d fragments\n",
		entry.Path, top.NResidues(), len(parts))
	for i, frag := range parts {
		fmt.Println(fragments.Describe(i, top, frag, nil))
	}
}
