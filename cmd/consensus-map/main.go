// consensus-map aligns the residues of a PDB file against a consensus
// nomenclature table and prints the per-residue consensus labels and the
// subdomain definitions they induce, optionally reconciled against the
// topology's own fragment partition.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Bio-Otto/mdciao/cmd/util"
	"github.com/Bio-Otto/mdciao/fragments"
	"github.com/Bio-Otto/mdciao/nomenclature"
	"github.com/Bio-Otto/mdciao/pdb"
)

var (
	flagTable     = ""
	flagFillGaps  = false
	flagFragments = false
	flagKeepAll   = false
	flagQuiet     = false
)

func init() {
	flag.StringVar(&flagTable, "table", flagTable,
		"Tab-separated consensus nomenclature table (AAresSeq<TAB>label[<TAB>subdomain]).")
	flag.BoolVar(&flagFillGaps, "fill-gaps", flagFillGaps,
		"Interpolate missing consensus labels inside internally consistent runs.")
	flag.BoolVar(&flagFragments, "fragments", flagFragments,
		"Reconcile the consensus definitions against the topology's resSeq fragments.")
	flag.BoolVar(&flagKeepAll, "keep-all", flagKeepAll,
		"With -fragments, keep clashing definitions unchanged instead of prompting.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"Only print the definitions, not the per-residue map.")
	util.Usage("pdb-file")
}

func main() {
	util.AssertNArg(1)
	if flagTable == "" {
		flag.Usage()
	}

	entry, err := pdb.New(flag.Arg(0))
	util.Assert(err, "Could not read PDB file '%s'", flag.Arg(0))
	top := entry.Topology()

	ref, err := nomenclature.ReadTableFile(flagTable)
	util.Assert(err, "Could not read nomenclature table '%s'", flagTable)

	labels, err := nomenclature.Map(ref, top, nomenclature.MapOptions{
		FillGaps: flagFillGaps,
	})
	util.Assert(err, "Could not map '%s' onto '%s'", flag.Arg(0), flagTable)

	if !flagQuiet {
		for idx, label := range labels {
			if label == "" {
				label = "NA"
			}
			fmt.Printf("%4d %10s %s\n", idx, top.Residues[idx].String(), label)
		}
	}

	defs, err := nomenclature.Definitions(ref, labels)
	util.Assert(err, "Could not build subdomain definitions")
	defs = nomenclature.CompleteLoops(defs)

	if flagFragments {
		parts := fragments.ByResSeq(top)
		rec := &fragments.Reconciler{In: os.Stdin, Out: os.Stdout, KeepAll: flagKeepAll}
		for i, def := range defs {
			kept, err := rec.Reconcile(def.Name, def.Idxs, parts, top, labels)
			util.Assert(err, "Could not reconcile '%s' with the topology fragments", def.Name)
			defs[i].Idxs = kept
		}
	}

	for _, def := range defs {
		fmt.Println(fragments.Describe(def.Name, top, def.Idxs, labels))
	}
}
