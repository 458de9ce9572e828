package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
	"github.com/codonmark/codonmark/watermark"
)

// runSettings stores everything a command needs.
type runSettings struct {
	command string
	seqF    string

	gcodeID   int
	frame     int
	tablesDir string
	dbFile    string

	message  []byte
	unframed bool
	length   int

	db    *bolt.DB
	codec *watermark.Codec
}

// newRunSettings initializes runSettings from global variables
// (command-line arguments).
func newRunSettings(cmd string) (*runSettings, error) {
	s := &runSettings{
		command:   cmd,
		gcodeID:   *gcodeID,
		frame:     *frame,
		tablesDir: *tablesDir,
		dbFile:    *dbFile,
	}
	switch cmd {
	case regionsCmd.FullCommand():
		s.seqF = *regionsSeq
	case capacityCmd.FullCommand():
		s.seqF = *capacitySeq
	case embedCmd.FullCommand():
		s.seqF = *embedSeq
		s.unframed = *embedUnframed
		msg, err := readMessage(*message, messageSet, *messageF)
		if err != nil {
			return nil, err
		}
		s.message = msg
	case extractCmd.FullCommand():
		s.seqF = *extractSeq
		s.unframed = *extractUnframed
		s.length = *length
		if s.unframed && s.length < 0 {
			return nil, errs.New(errs.InvalidArgument, "codonmark", "--unframed requires --length")
		}
	}
	return s, nil
}

// open creates the table provider chain and the codec: built-in or
// directory tables, optionally behind the database cache, behind the
// in-memory cache.
func (s *runSettings) open() (err error) {
	p := gctable.NCBI()
	if s.tablesDir != "" {
		log.Infof("Reading genetic code tables from %s", s.tablesDir)
		p, err = gctable.Dir(s.tablesDir)
		if err != nil {
			return err
		}
	}
	if s.dbFile != "" {
		s.db, err = bolt.Open(s.dbFile, 0600, &bolt.Options{Timeout: 5 * time.Second})
		if err != nil {
			return fmt.Errorf("opening table database: %w", err)
		}
		log.Infof("Using table database %s", s.dbFile)
		p = gctable.NewBolt(s.db, p)
	}
	s.codec = watermark.New(gctable.NewCache(p))
	return nil
}

// close releases the database.
func (s *runSettings) close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error("Error closing table database:", err)
		}
		s.db = nil
	}
}

// run executes the command writing results to w.
func (s *runSettings) run(w io.Writer) (*RunSummary, error) {
	summary := &RunSummary{
		Command:     s.command,
		GeneticCode: s.gcodeID,
		Frame:       s.frame,
	}
	if s.command == tablesCmd.FullCommand() {
		return summary, s.tables(w)
	}

	t, err := s.codec.Table(s.gcodeID)
	if err != nil {
		return nil, err
	}
	log.Infof("Genetic code: %d, \"%s\"", t.ID, t.Name)
	log.Infof("Reading frame: %d", s.frame)

	seqs, err := readSequences(s.seqF)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d sequence(s)", len(seqs))

	for _, seq := range seqs {
		var rec *RecordSummary
		switch s.command {
		case regionsCmd.FullCommand():
			rec, err = s.regions(seq.Name, seq.Sequence, w)
		case capacityCmd.FullCommand():
			rec, err = s.capacity(seq.Name, seq.Sequence, w)
		case embedCmd.FullCommand():
			rec, err = s.embed(seq.Name, seq.Sequence, w)
		case extractCmd.FullCommand():
			rec, err = s.extract(seq.Name, seq.Sequence, w)
		default:
			return nil, errs.New(errs.InvalidArgument, "codonmark", "unknown command %q", s.command)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seq.Name, err)
		}
		summary.Records = append(summary.Records, *rec)
	}
	return summary, nil
}

// readSequences reads sequences from a file, "-" means the standard
// input.
func readSequences(fn string) (bio.Sequences, error) {
	if fn == "-" {
		return bio.ParseSequences(os.Stdin, "stdin")
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bio.ParseSequences(f, strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn)))
}

// readMessage returns the message given as text (textSet tells if
// it was given at all) or in a file.
func readMessage(text string, textSet bool, fn string) ([]byte, error) {
	switch {
	case textSet && fn != "":
		return nil, errs.New(errs.InvalidArgument, "codonmark", "use either --message or --message-file")
	case fn != "":
		return os.ReadFile(fn)
	case textSet:
		return []byte(text), nil
	}
	return nil, errs.New(errs.InvalidArgument, "codonmark", "no message, use --message or --message-file")
}
