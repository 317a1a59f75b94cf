package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ravensec/domaintwist/internal/dictionary"
	"github.com/ravensec/domaintwist/internal/tld"
	"github.com/ravensec/domaintwist/pkg/dnstwist"
)

const (
	version = "20260731"
	author  = "©ravensec"
)

const defaultSuffixPath = "database/effective_tld_names.dat"

var (
	flagAll          bool
	flagDictionary   string
	flagFormat       string
	flagWorkers      int
	flagNameservers  string
	flagPort         int
	flagTLD          string
	flagSuffixFile   string
	flagNoColor      bool
	flagRegistered   bool
	flagUnregistered bool

	rootCmd = &cobra.Command{
		Use:     "dnstwist [domain]",
		Short:   "Domain name permutation engine for detecting typo squatting, phishing and corporate espionage",
		Long:    "dnstwist generates domain name variants and resolves them to find live typosquats, phishing lookalikes, and corporate-espionage domains.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE:    run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// invalidDomainError maps to exit code 2; missingFileError maps to 3.
type invalidDomainError struct{ err error }

func (e *invalidDomainError) Error() string { return e.err.Error() }
func (e *invalidDomainError) Unwrap() error { return e.err }

type missingFileError struct {
	path string
	err  error
}

func (e *missingFileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.path, e.err)
}
func (e *missingFileError) Unwrap() error { return e.err }

func run(cmd *cobra.Command, args []string) error {
	opts := dnstwist.Options{
		Domain:       args[0],
		All:          flagAll,
		Format:       flagFormat,
		Workers:      flagWorkers,
		Port:         flagPort,
		NoColor:      flagNoColor,
		Registered:   flagRegistered,
		Unregistered: flagUnregistered,
	}

	if flagNameservers != "" {
		opts.Nameservers = strings.Split(flagNameservers, ",")
	}

	suffixFile, err := os.Open(flagSuffixFile)
	if err != nil {
		return &missingFileError{path: flagSuffixFile, err: err}
	}
	defer suffixFile.Close()
	opts.SuffixData = suffixFile

	if flagDictionary != "" {
		f, err := os.Open(flagDictionary)
		if err != nil {
			return &missingFileError{path: flagDictionary, err: err}
		}
		defer f.Close()
		words, err := dictionary.LoadWords(f)
		if err != nil {
			return &missingFileError{path: flagDictionary, err: err}
		}
		opts.DictionaryWords = words
	}

	if flagTLD != "" {
		f, err := os.Open(flagTLD)
		if err != nil {
			return &missingFileError{path: flagTLD, err: err}
		}
		defer f.Close()
		tlds, err := tld.LoadTLDs(f)
		if err != nil {
			return &missingFileError{path: flagTLD, err: err}
		}
		opts.TLDs = tlds
	}

	engine, err := dnstwist.New(opts)
	if err != nil {
		return &invalidDomainError{err: err}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progressOut io.Writer
	if opts.Format != "idle" {
		// Scenario 6 (spec.md section 8): listing variants without
		// resolving DNS prints no progress line at all.
		progressOut = os.Stderr
	}

	report, runErr := engine.Run(ctx, progressOut)
	if ctx.Err() != nil {
		// Cancellation is a normal, zero-exit-code stop per spec.md
		// section 7: whatever resolved before Ctrl-C is still useful.
		log.Printf("dnstwist: interrupted, reporting partial results")
	} else if runErr != nil {
		return &invalidDomainError{err: runErr}
	}

	fmt.Print(report)
	return nil
}

func exitCodeFor(err error) int {
	for e := err; e != nil; {
		if _, ok := e.(*invalidDomainError); ok {
			return 2
		}
		if _, ok := e.(*missingFileError); ok {
			return 3
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	log.Printf("dnstwist: %v", err)
	return 1
}

func init() {
	rootCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Print all DNS records instead of the first one")
	rootCmd.Flags().StringVarP(&flagDictionary, "dictionary", "d", "", "Generate additional domains by composing this word list with the stem")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "cli", "Output format (cli, csv, json, idle)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "k", 10, "Number of concurrent DNS resolution workers")
	rootCmd.Flags().StringVar(&flagNameservers, "nameservers", "", "Comma-separated resolver IPs (default 8.8.8.8)")
	rootCmd.Flags().IntVar(&flagPort, "port", 53, "Resolver port")
	rootCmd.Flags().StringVar(&flagTLD, "tld", "", "Path to a TLD list file for TLD-swap generation")
	rootCmd.Flags().StringVar(&flagSuffixFile, "suffix-file", defaultSuffixPath, "Path to the public-suffix data file")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI styling in cli output")
	rootCmd.Flags().BoolVarP(&flagRegistered, "registered", "r", false, "Show only registered (resolving) domain names")
	rootCmd.Flags().BoolVarP(&flagUnregistered, "unregistered", "u", false, "Show only answering domain names that have no A record (NXDOMAIN names are never listed)")
}
