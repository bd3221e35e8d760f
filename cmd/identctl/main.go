// Package main provides the CLI entrypoint for identctl.
//
// identctl resolves a single identifier token against a set declared in a
// schema file, the way a decoder would at a field or variant position:
//
//	identctl --schema schema.yaml --set F --name aaa
//	identctl --schema schema.yaml --set F --index 42 --width u8
//	identctl --schema schema.toml --set V --cbor 63414141
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/rodoufu/serde/identifier"
	"github.com/rodoufu/serde/internal/diagnostic"
	"github.com/rodoufu/serde/internal/observability"
	"github.com/rodoufu/serde/internal/schema"
	"github.com/rodoufu/serde/primitive"
	"github.com/rodoufu/serde/token"
)

// errReported marks failures already written to stderr.
var errReported = errors.New("reported")

type options struct {
	schemaPath string
	set        string
	list       bool
	index      string
	width      string
	name       string
	bytesHex   string
	cborHex    string
	logLevel   string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("identctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.schemaPath, "schema", "", "schema file (.yaml, .toml, .json, .jsonc)")
	flagSet.StringVar(&opts.set, "set", "", "identifier set to resolve against")
	flagSet.BoolVar(&opts.list, "list", false, "list the sets declared by the schema")
	flagSet.StringVar(&opts.index, "index", "", "resolve an unsigned index token")
	flagSet.StringVar(&opts.width, "width", "u64", "width of the --index token: u8, u16, u32 or u64")
	flagSet.StringVar(&opts.name, "name", "", "resolve a name token")
	flagSet.StringVar(&opts.bytesHex, "bytes", "", "resolve a byte-string token given in hex")
	flagSet.StringVar(&opts.cborHex, "cbor", "", "resolve the CBOR data item given in hex")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	level, err := observability.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := observability.InitLogger("identctl", stderr, level)

	if opts.schemaPath == "" {
		printHelp(stderr, flagSet)
		return errReported
	}

	file, err := schema.LoadFile(opts.schemaPath)
	if err != nil {
		return err
	}

	registry, diags, err := schema.Build(file)
	for _, w := range diags.Warnings {
		logger.Warn().Str("code", w.Code).Str("set", w.Set).Msg(w.Message)
	}
	for _, info := range diags.Infos {
		logger.Debug().Str("code", info.Code).Str("set", info.Set).Msg(info.Message)
	}
	if err != nil {
		return err
	}
	logger.Debug().Str("schema", opts.schemaPath).Strs("sets", registry.Names()).Msg("loaded schema")

	if opts.list {
		return listSets(stdout, registry)
	}

	if opts.set == "" {
		return errors.New("--set is required")
	}

	tok, err := tokenFromFlags(flagSet, &opts)
	if err != nil {
		return err
	}

	entry, err := registry.Lookup(opts.set)
	if err != nil {
		return err
	}

	logger.Debug().Str("set", opts.set).Stringer("token", tok).Stringer("policy", entry.Policy).Msg("resolving")

	res, err := entry.Resolve(tok)
	if err != nil {
		if diag, ok := diagnostic.FromError(err, opts.set); ok {
			fmt.Fprintln(stderr, diag.String())
			return errReported
		}
		return err
	}

	printResult(stdout, entry, res)

	return nil
}

// tokenFromFlags builds the token from exactly one of the token flags.
func tokenFromFlags(flagSet *pflag.FlagSet, opts *options) (token.Token, error) {
	given := 0
	for _, name := range []string{"index", "name", "bytes", "cbor"} {
		if flagSet.Changed(name) {
			given++
		}
	}

	if given != 1 {
		return token.Token{}, errors.New("exactly one of --index, --name, --bytes or --cbor is required")
	}

	switch {
	case flagSet.Changed("index"):
		return indexToken(opts.index, opts.width)
	case flagSet.Changed("name"):
		return token.Str(opts.name), nil
	case flagSet.Changed("bytes"):
		raw, err := hex.DecodeString(opts.bytesHex)
		if err != nil {
			return token.Token{}, fmt.Errorf("invalid --bytes: %w", err)
		}
		return token.Bytes(raw), nil
	default:
		raw, err := hex.DecodeString(opts.cborHex)
		if err != nil {
			return token.Token{}, fmt.Errorf("invalid --cbor: %w", err)
		}
		return token.FromCBOR(raw)
	}
}

func indexToken(value, width string) (token.Token, error) {
	kind, ok := parseWidth(width)
	if !ok {
		return token.Token{}, fmt.Errorf("invalid --width %q", width)
	}

	v, err := strconv.ParseUint(value, 10, kind.Bits())
	if err != nil {
		return token.Token{}, fmt.Errorf("invalid --index: %w", err)
	}

	switch kind {
	case primitive.KindUint8:
		return token.U8(uint8(v)), nil
	case primitive.KindUint16:
		return token.U16(uint16(v)), nil
	case primitive.KindUint32:
		return token.U32(uint32(v)), nil
	default:
		return token.U64(v), nil
	}
}

// parseWidth maps "u8".."u64" to the matching unsigned kind.
func parseWidth(width string) (primitive.KindEnum, bool) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.IsUnsigned() && k.Expecting() == width {
			return k, true
		}
	}

	return 0, false
}

func printResult(w io.Writer, entry *schema.Entry, res identifier.Result[any]) {
	if res.Outcome == identifier.Matched {
		fmt.Fprintf(w, "matched %s %q (index %d)\n", entry.Set.Kind(), res.Identifier.Name, res.Identifier.Index)
		return
	}

	label := entry.Def.Fallback
	if label == "" {
		label = "catch-all"
	}

	if entry.Policy == identifier.CatchAllUnit {
		fmt.Fprintf(w, "fallback %s\n", label)
		return
	}

	fmt.Fprintf(w, "fallback %s(%T(%v))\n", label, res.Payload, payloadString(res.Payload))
}

func payloadString(v any) any {
	switch v := v.(type) {
	case []byte:
		return strconv.Quote(string(v))
	case string:
		return strconv.Quote(v)
	default:
		return v
	}
}

func listSets(w io.Writer, registry *schema.Registry) error {
	for _, name := range registry.Names() {
		entry, err := registry.Lookup(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, entry.Set.Kind(), entry.Policy, identifier.OneOf(entry.Set.Names()))
	}

	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `identctl resolves an identifier token against a schema-declared set.

Usage:
  identctl --schema FILE --list
  identctl --schema FILE --set NAME (--index N [--width u8] | --name S | --bytes HEX | --cbor HEX)

Flags:
%s`, flagSet.FlagUsages())
}
