/*

Codonmark hides short messages in protein coding DNA sequences using
synonymous codon substitution. The encoded protein is not changed.

Find coding regions and the capacity of a sequence:

	codonmark regions seq.fst
	codonmark capacity seq.fst

Embed and extract a message:

	codonmark embed --message "hello" seq.fst > marked.fst
	codonmark extract marked.fst

The sequence can be a FASTA file (every record is processed) or a
raw sequence, "-" reads the standard input. To see all the options
run:

	codonmark -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("codonmark")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("codonmark", "DNA watermarking by synonymous codon substitution").Version(version)

	// genetic code and reading frame
	gcodeID   = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Envar("CODONMARK_GCODE").Int()
	frame     = app.Flag("frame", "reading frame (1, 2 or 3)").Default("1").Int()
	tablesDir = app.Flag("tables", "read genetic code tables from a JSON directory instead of the built-in NCBI tables").ExistingDir()
	dbFile    = app.Flag("db", "cache genetic code tables in a database file").String()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json run summary to a file").String()

	// regions
	regionsCmd = app.Command("regions", "print coding regions")
	regionsSeq = regionsCmd.Arg("seq", "sequence file (FASTA or raw), - for stdin").Required().String()

	// capacity
	capacityCmd = app.Command("capacity", "print watermark capacity")
	capacitySeq = capacityCmd.Arg("seq", "sequence file (FASTA or raw), - for stdin").Required().String()

	// embed
	embedCmd      = app.Command("embed", "embed a message")
	embedSeq      = embedCmd.Arg("seq", "sequence file (FASTA or raw), - for stdin").Required().String()
	message       = embedCmd.Flag("message", "message text").Short('m').Action(setMessage).String()
	messageF      = embedCmd.Flag("message-file", "read message from a file").ExistingFile()
	outF          = embedCmd.Flag("out", "write watermarked sequences to a file").Short('o').String()
	embedUnframed = embedCmd.Flag("unframed", "don't write the message length header").Bool()

	// extract
	extractCmd      = app.Command("extract", "extract a message")
	extractSeq      = extractCmd.Arg("seq", "sequence file (FASTA or raw), - for stdin").Required().String()
	extractUnframed = extractCmd.Flag("unframed", "the message has no length header (requires --length)").Bool()
	length          = extractCmd.Flag("length", "message length in bytes for --unframed").Default("-1").Int()

	// tables
	tablesCmd = app.Command("tables", "list available genetic codes")
)

// messageSet tells if --message was given, an empty message is valid.
var messageSet bool

func setMessage(*kingpin.ParseContext) error {
	messageSet = true
	return nil
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "codonmark")
	logging.SetLevel(level, "watermark")
	logging.SetLevel(level, "gctable")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	startTime := time.Now()

	s, err := newRunSettings(cmd)
	if err != nil {
		log.Fatal(err)
	}
	if err = s.open(); err != nil {
		log.Fatal(err)
	}
	defer s.close()

	out := os.Stdout
	if cmd == embedCmd.FullCommand() && *outF != "" {
		out, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating output file:", err)
		}
		defer out.Close()
	}

	summary, err := s.run(out)
	if err != nil {
		log.Fatal(err)
	}

	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)
	summary.Version = version
	summary.CommandLine = os.Args
	summary.Time = deltaT.Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
