package main

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/codonmark/codonmark/orf"
)

// RunSummary is storing codonmark run summary information.
type RunSummary struct {
	// Version stores codonmark version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the subcommand which was run.
	Command string `json:"command"`
	// GeneticCode is the NCBI genetic code id.
	GeneticCode int `json:"geneticCode"`
	// Frame is the reading frame.
	Frame int `json:"frame"`
	// Records stores per sequence results.
	Records []RecordSummary `json:"records,omitempty"`
	// Time is the running time in seconds.
	Time float64 `json:"time"`
}

// RecordSummary is storing results for one sequence.
type RecordSummary struct {
	Name string `json:"name"`
	// Length is the normalized sequence length.
	Length  int           `json:"length"`
	Regions orf.RegionSet `json:"regions"`
	// Capacity is the number of bits which can be embedded.
	Capacity int `json:"capacity"`
	// MessageLength is the embedded or extracted message length in bytes.
	MessageLength int `json:"messageLength,omitempty"`
	// InputCID and OutputCID identify the normalized input and the
	// watermarked output sequences.
	InputCID  string `json:"inputCID"`
	OutputCID string `json:"outputCID,omitempty"`
}

// sequenceCID returns the CIDv1 (raw codec, sha2-256) of a sequence.
func sequenceCID(seq string) (string, error) {
	sum, err := multihash.Sum([]byte(seq), multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}
