package main

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
)

// mode is the parser state.
type mode int

const (
	normal mode = iota
	table
	assign
	list
	element
	elementPar
	elementPreComma
	preComma
	end
)

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, "\"") || !strings.HasSuffix(s, "\"") || len(s) < 2 {
		return "", errors.New("string is not quoted")
	}
	return s[1 : len(s)-1], nil
}

func aNumMinus(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// asn1Split is a bufio.SplitFunc for the subset of ASN.1 value
// notation used by gc.prt. Comments (--) are returned as tokens.
func asn1Split(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for ; i < len(data); i++ {
		if !unicode.IsSpace(rune(data[i])) {
			break
		}
	}
	data = data[i:]
	advance := i

	if len(data) == 0 {
		return advance, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] != '-' {
			return 0, nil, errors.New("unexpected character after '-'")
		}
		a, t, err := bufio.ScanLines(data, atEOF)
		if a == 0 {
			return advance, nil, err
		}
		return a + advance, t, err
	case ':':
		if len(data) < 3 {
			if atEOF {
				return 0, nil, errors.New("unexpected end of file")
			}
			return advance, nil, nil
		}
		if data[1] != ':' || data[2] != '=' {
			return 0, nil, errors.New("unexpected character after ':'")
		}
		return advance + 3, data[:3], nil
	case '"':
		for i := 1; i < len(data); i++ {
			if data[i] == '"' {
				return advance + i + 1, data[:i+1], nil
			}
		}
		if atEOF {
			return 0, nil, errors.New("unfinished string literal")
		}
		return advance, nil, nil
	case '{', '}', ',':
		return advance + 1, data[:1], nil
	}
	if aNumMinus(data[0]) {
		i := 1
		for ; i < len(data); i++ {
			if !aNumMinus(data[i]) {
				break
			}
		}
		if i == len(data) && !atEOF {
			return advance, nil, nil
		}
		return advance + i, data[:i], nil
	}
	return 0, nil, errors.New("unknown token")
}

// ParseAsn1 parses NCBI genetic codes in the gc.prt format.
func ParseAsn1(rd io.Reader) ([]*bio.GeneticCode, error) {
	const op = "gcode.ParseAsn1"
	var res []*bio.GeneticCode

	scanner := bufio.NewScanner(rd)
	scanner.Split(asn1Split)

	m := normal
	var gc *bio.GeneticCode
	var parName string

	expect := func(what string) error {
		return errs.New(errs.Unresolvable, op, "expecting %s", what)
	}

	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "--") {
			continue
		}

		switch m {
		case normal:
			if text != "Genetic-code-table" {
				return nil, expect("'Genetic-code-table'")
			}
			m = table
		case table:
			if text != "::=" {
				return nil, expect("'::='")
			}
			m = assign
		case assign:
			if text != "{" {
				return nil, expect("'{'")
			}
			m = list
		case list:
			switch text {
			case "{":
				gc = &bio.GeneticCode{}
				m = element
			case "}":
				m = end
			default:
				return nil, expect("'{' or '}'")
			}
		case element:
			parName = text
			m = elementPar
		case elementPar:
			var err error
			switch parName {
			case "name":
				var uq string
				if uq, err = unquote(text); err != nil {
					break
				}
				uq = strings.Replace(uq, "\n", "", -1)
				if gc.Name == "" {
					gc.Name = uq
				} else {
					gc.ShortName = uq
				}
			case "id":
				gc.ID, err = strconv.Atoi(text)
			case "ncbieaa":
				gc.Ncbieaa, err = unquote(text)
			case "sncbieaa":
				gc.Sncbieaa, err = unquote(text)
			}
			if err != nil {
				return nil, errs.Wrap(errs.Unresolvable, op, err, "parameter %s", parName)
			}
			m = elementPreComma
		case elementPreComma:
			switch text {
			case ",":
				m = element
			case "}":
				res = append(res, gc)
				m = preComma
			default:
				return nil, expect("',' or '}'")
			}
		case preComma:
			switch text {
			case ",":
				m = list
			case "}":
				m = end
			default:
				return nil, expect("',' or '}'")
			}
		case end:
			return nil, errs.New(errs.Unresolvable, op, "unexpected symbols at the end of file")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(errs.Unresolvable, op, err, "reading genetic codes")
	}

	if m != end {
		return nil, errs.New(errs.Unresolvable, op, "unexpected end of stream")
	}

	for _, gc := range res {
		if len(gc.Ncbieaa) != bio.NCodons || len(gc.Sncbieaa) != bio.NCodons {
			return nil, errs.New(errs.Unresolvable, op, "genetic code %d doesn't have %d codons", gc.ID, bio.NCodons)
		}
	}
	return res, nil
}
