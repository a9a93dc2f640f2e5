package pdb

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/Bio-Otto/mdciao/topology"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// Entry represents the residue-level information read from a PDB file:
// per-chain residue lists from the ATOM/HETATM records and the SEQRES
// sequences. Coordinates are not kept.
type Entry struct {
	Path   string
	Chains map[byte]*Chain

	chainOrder []byte
}

// Chain represents a protein chain or subunit in a PDB file.
type Chain struct {
	Ident byte
	// SeqRes is the amino acid sequence declared in SEQRES records.
	SeqRes []byte
	// Residues are the residues actually present in ATOM/HETATM records,
	// in file order, one per seqnum/insertion-code/name triple.
	Residues []Residue

	lastSeqNum int
	lastICode  byte
	lastName   string
}

// Residue is one residue read from the coordinate records.
type Residue struct {
	Name   string
	SeqNum int
	ICode  byte
	// Code is the one-letter code, or 0 for hetero residues without one.
	Code byte
}

// New creates a new PDB Entry from a file. If the file cannot be read, or
// there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func New(fileName string) (*Entry, error) {
	var reader io.Reader

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader = f

	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}
	return Read(reader, fileName)
}

// Read parses PDB records from r. The name is only used for labelling.
func Read(r io.Reader, name string) (*Entry, error) {
	entry := &Entry{
		Path:   name,
		Chains: make(map[byte]*Chain),
	}

	breader := bufio.NewReaderSize(r, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines
		// longer than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(line) < 6 {
			continue
		}

		// The record name is always in the first six columns.
		switch strings.TrimSpace(string(line[0:6])) {
		case "SEQRES":
			entry.parseSeqres(line)
		case "ATOM", "HETATM":
			entry.parseAtom(line)
		}
	}
	return entry, nil
}

// getOrMakeChain looks for a chain corresponding to the chain identifier.
// If one doesn't exist, it is created and remembered in file order.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	chain := &Chain{
		Ident:      ident,
		SeqRes:     make([]byte, 0, 10),
		lastSeqNum: -1 << 30,
	}
	e.Chains[ident] = chain
	e.chainOrder = append(e.chainOrder, ident)
	return chain
}

// parseSeqres reads the amino acids declared in a SEQRES record. Residues
// that aren't standard amino acids are ignored here; they still show up in
// the coordinate records.
func (e *Entry) parseSeqres(line []byte) {
	if len(line) < 12 {
		return
	}
	chain := e.getOrMakeChain(line[11])

	// Residues are in columns 19-21, 23-25, 27-29, ..., 67-69.
	for i := 19; i <= 67; i += 4 {
		end := i + 3
		if end >= len(line) {
			break
		}
		residue := strings.TrimSpace(string(line[i:end]))
		if single, ok := AminoThreeToOne[residue]; ok {
			chain.SeqRes = append(chain.SeqRes, single)
		}
	}
}

// parseAtom accumulates one Residue per seqnum/insertion-code/name triple
// seen in the ATOM and HETATM records. Waters are skipped. Hetero residues
// without a one-letter code (ligands, nucleotides) are kept with Code 0 so
// that downstream sequence building can substitute the sentinel.
func (e *Entry) parseAtom(line []byte) {
	if len(line) < 27 {
		return
	}
	name := strings.TrimSpace(string(line[17:20]))
	if name == "HOH" {
		return
	}
	chain := e.getOrMakeChain(line[21])

	// The residue sequence number is in columns 22-25, the insertion
	// code in column 26.
	snum := strings.TrimSpace(string(line[22:26]))
	num, err := strconv.Atoi(snum)
	if err != nil {
		return
	}
	icode := line[26]

	if num == chain.lastSeqNum && icode == chain.lastICode && name == chain.lastName {
		return
	}
	chain.lastSeqNum, chain.lastICode, chain.lastName = num, icode, name
	chain.Residues = append(chain.Residues, Residue{
		Name:   name,
		SeqNum: num,
		ICode:  icode,
		Code:   AminoThreeToOne[name],
	})
}

// ChainsInOrder returns the chains in file order. (The Chains map has
// randomized iteration order.)
func (e *Entry) ChainsInOrder() []*Chain {
	chains := make([]*Chain, len(e.chainOrder))
	for i, ident := range e.chainOrder {
		chains[i] = e.Chains[ident]
	}
	return chains
}

// Topology flattens the entry's coordinate residues into a topology, with
// chains in file order and dense zero-based residue indices.
func (e *Entry) Topology() *topology.Topology {
	top := &topology.Topology{}
	for _, chain := range e.ChainsInOrder() {
		for _, r := range chain.Residues {
			top.Residues = append(top.Residues, topology.Residue{
				Index:  len(top.Residues),
				SeqNum: r.SeqNum,
				Code:   r.Code,
				Name:   r.Name,
				Chain:  string(chain.Ident),
			})
		}
	}
	return top
}
