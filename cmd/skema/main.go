package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	json "github.com/goccy/go-json"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/internal/config"
	"github.com/reoring/skema/internal/values"
)

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1 // a check ran and did not pass
	exitUsage  = 2 // bad flags, config or input
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env carries the process streams so that commands can be driven from tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := env{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) < 1 {
		e.usage()
		return exitUsage
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "validate":
		return e.validateCmd(rest)
	case "gen":
		return e.genCmd(rest)
	case "lint":
		return e.lintCmd(rest)
	case "info":
		return e.infoCmd(rest)
	case "subset":
		return e.subsetCmd(rest)
	case "help", "-h", "-help", "--help":
		e.usage()
		return exitOK
	default:
		fmt.Fprintf(e.stderr, "unknown command %q\n\n", sub)
		e.usage()
		return exitUsage
	}
}

func (e env) usage() {
	fmt.Fprintln(e.stderr, `skema CLI

Usage:
  skema validate [schema flags] [-value JSON]   validate stdin (or -value) values
  skema gen      [schema flags] [-n N] [-mode sequential|random] [-seed S]
  skema lint     [schema flags]                 report declaration errors
  skema info     [schema flags]                 describe the schema
  skema subset   [schema flags] [-target-* flags]

Schema flags:
  -kind number|boolean|string  -optional
  number: -min -max -divisible -integer -positive
  string: -min-length -max-length

Common flags: -config file.yaml -lang en|ja -pretty -v`)
}

// session is the per-command state built from the common flags and the
// optional config file.
type session struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
}

type commonFlags struct {
	configPath string
	lang       string
	pretty     bool
	verbose    bool
}

func (e env) flagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	cf := &commonFlags{}
	fs.StringVar(&cf.configPath, "config", "", "YAML file with generator and output defaults")
	fs.StringVar(&cf.lang, "lang", "", "message language: en|ja (overrides config)")
	fs.BoolVar(&cf.pretty, "pretty", false, "indent JSON output (overrides config)")
	fs.BoolVar(&cf.verbose, "v", false, "enable debug logs")
	return fs, cf
}

// parse parses args and opens the session. override may adjust the loaded
// config from command-specific flags; set holds the flags given explicitly.
func (e env) parse(fs *flag.FlagSet, cf *commonFlags, args []string, override func(cfg *config.Config, set map[string]bool)) (*session, int) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exitOK
		}
		return nil, exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(e.stderr, "%s: unexpected arguments %v\n", fs.Name(), fs.Args())
		return nil, exitUsage
	}

	level := slog.LevelInfo
	if cf.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level})).With("cmd", fs.Name())

	cfg, err := config.Load(cf.configPath)
	if err != nil {
		log.Error("load config", "err", err)
		return nil, exitUsage
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lang"] {
		cfg.Language = cf.lang
	}
	if set["pretty"] {
		cfg.Pretty = cf.pretty
	}
	if override != nil {
		override(&cfg, set)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid settings", "err", err)
		return nil, exitUsage
	}
	i18n.SetLanguage(cfg.Language)
	log.Debug("settings", "config", cf.configPath, "maxAmount", cfg.MaxAmount, "mode", cfg.Mode, "seed", cfg.Seed, "language", cfg.Language)
	return &session{cfg: cfg, log: log, out: e.stdout}, exitOK
}

func (s *session) buildSchema(fs *flag.FlagSet, sf *schemaFlags) (skema.Schema, bool) {
	schema, err := sf.build(fs)
	if err != nil {
		s.log.Error("build schema", "err", err)
		return nil, false
	}
	s.log.Debug("schema", "kind", schema.Kind(), "optional", schema.IsOptional())
	return schema, true
}

func (s *session) write(v any) error {
	var (
		b   []byte
		err error
	)
	if s.cfg.Pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	b = append(b, '\n')
	_, err = s.out.Write(b)
	return err
}

func (e env) validateCmd(args []string) int {
	fs, cf := e.flagSet("validate")
	sf := newSchemaFlags(fs, "")
	var value string
	fs.StringVar(&value, "value", "", "single JSON value to validate instead of reading stdin")
	s, code := e.parse(fs, cf, args, nil)
	if s == nil {
		return code
	}
	schema, ok := s.buildSchema(fs, sf)
	if !ok {
		return exitUsage
	}

	if value != "" {
		v, err := values.Parse(value)
		if err != nil {
			s.log.Error("parse -value", "err", err)
			return exitUsage
		}
		return s.validateAll(schema, []any{v})
	}
	// Values decoded before a syntax error are still reported.
	all, err := values.NewReader(e.stdin).ReadAll()
	code = s.validateAll(schema, all)
	if err != nil {
		s.log.Error("read input", "err", err)
		return exitUsage
	}
	return code
}

func (s *session) validateAll(schema skema.Schema, vals []any) int {
	code := exitOK
	for i, v := range vals {
		res := schema.Validate(v)
		if !res.OK() {
			code = exitFailed
		}
		s.log.Debug("validated", "index", i, "value", skema.FormatValue(v), "ok", res.OK())
		if err := s.write(res); err != nil {
			s.log.Error("write", "err", err)
			return exitUsage
		}
	}
	return code
}

func (e env) genCmd(args []string) int {
	fs, cf := e.flagSet("gen")
	sf := newSchemaFlags(fs, "")
	var (
		n    int
		mode string
		seed uint64
	)
	fs.IntVar(&n, "n", 0, "number of samples (overrides config maxAmount)")
	fs.StringVar(&mode, "mode", "", "sequential|random (overrides config)")
	fs.Uint64Var(&seed, "seed", 0, "random seed, 0 = unseeded (overrides config)")
	s, code := e.parse(fs, cf, args, func(cfg *config.Config, set map[string]bool) {
		if set["n"] {
			cfg.MaxAmount = n
		}
		if set["mode"] {
			cfg.Mode = mode
		}
		if set["seed"] {
			cfg.Seed = seed
		}
	})
	if s == nil {
		return code
	}
	schema, ok := s.buildSchema(fs, sf)
	if !ok {
		return exitUsage
	}

	opt := s.cfg.GenOpt()
	seq := schema.GenerateSequentialData(opt)
	if s.cfg.Mode == config.ModeRandom {
		seq = schema.GenerateRandomData(opt)
	}
	out := make([]any, 0, skema.CleanGenOpt(opt).MaxAmount)
	for v := range seq {
		out = append(out, jsonSafe(v))
	}
	s.log.Debug("generated", "mode", s.cfg.Mode, "count", len(out))
	if err := s.write(out); err != nil {
		s.log.Error("write", "err", err)
		return exitUsage
	}
	return exitOK
}

// jsonSafe spells out non-finite floats, which JSON cannot represent.
func jsonSafe(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return skema.FormatNumber(f)
	}
	return v
}

func (e env) lintCmd(args []string) int {
	fs, cf := e.flagSet("lint")
	sf := newSchemaFlags(fs, "")
	s, code := e.parse(fs, cf, args, nil)
	if s == nil {
		return code
	}
	schema, ok := s.buildSchema(fs, sf)
	if !ok {
		return exitUsage
	}
	errs := schema.Errors()
	if err := s.write(errs); err != nil {
		s.log.Error("write", "err", err)
		return exitUsage
	}
	if len(errs) > 0 {
		return exitFailed
	}
	return exitOK
}

func (e env) infoCmd(args []string) int {
	fs, cf := e.flagSet("info")
	sf := newSchemaFlags(fs, "")
	s, code := e.parse(fs, cf, args, nil)
	if s == nil {
		return code
	}
	schema, ok := s.buildSchema(fs, sf)
	if !ok {
		return exitUsage
	}
	if err := s.write(schema.Info()); err != nil {
		s.log.Error("write", "err", err)
		return exitUsage
	}
	return exitOK
}

func (e env) subsetCmd(args []string) int {
	fs, cf := e.flagSet("subset")
	src := newSchemaFlags(fs, "")
	tgt := newSchemaFlags(fs, "target-")
	s, code := e.parse(fs, cf, args, nil)
	if s == nil {
		return code
	}
	source, ok := s.buildSchema(fs, src)
	if !ok {
		return exitUsage
	}
	target, ok := s.buildSchema(fs, tgt)
	if !ok {
		return exitUsage
	}
	res := source.CheckSubsetOf(target)
	if err := s.write(res); err != nil {
		s.log.Error("write", "err", err)
		return exitUsage
	}
	if !res.IsSubset {
		return exitFailed
	}
	return exitOK
}
