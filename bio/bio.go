// Package bio provides nucleotide sequence handling and the NCBI
// genetic codes.
package bio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Normalize lowercases a nucleotide string and drops every character
// which is not one of a, c, g or t. The order of the kept characters
// is preserved, so all the positions used by the scanner and the
// codec refer to the normalized sequence.
func Normalize(seq string) string {
	var buffer bytes.Buffer
	buffer.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		switch c := seq[i]; c {
		case 'a', 'c', 'g', 't':
			buffer.WriteByte(c)
		case 'A', 'C', 'G', 'T':
			buffer.WriteByte(c + 'a' - 'A')
		}
	}
	return buffer.String()
}

// Translate translates nucleotide sequence string into the protein
// string using genetic code gc. Error is returned is sequence is not
// divisible by three or wrong codon is encountered. Stop codons are
// translated to '*'.
func Translate(nseq string, gc *GeneticCode) (string, error) {
	var buffer bytes.Buffer

	if len(nseq)%3 != 0 {
		return "", errors.New("sequence length doesn't divide by 3")
	}

	// Convert all the letters to uppercase and U->T.
	nseq = strings.Replace(strings.ToUpper(nseq), "U", "T", -1)

	for i := 0; i < len(nseq); i += 3 {
		aa, ok := gc.Residue(nseq[i : i+3])
		if !ok {
			return buffer.String(), errors.New("unknown codon")
		}
		buffer.WriteByte(aa)
	}
	return buffer.String(), nil
}

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: strings.TrimSpace(line[1:])}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.Replace(line, " ", "", -1)
			seqs[len(seqs)-1].Sequence += line
		}
	}
	err = scanner.Err()
	return
}

// ParseSequences reads either FASTA records or, if the input doesn't
// start with '>', a single raw sequence named name.
func ParseSequences(rd io.Reader, name string) (Sequences, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '>' {
		return ParseFasta(bytes.NewReader(trimmed))
	}
	return Sequences{{Name: name, Sequence: string(data)}}, nil
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
