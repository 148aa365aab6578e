// btxtgen synthesizes a bitmap font and writes it as Go source, so
// it can be embedded in programs without parsing anything at runtime:
//
//   btxtgen -size 15 -positions 4 -bits 4 -chars "╔═╗║╚╝" -out table.go -pkg boxes
//
// Box-drawing, block and braille characters are always synthesized.
// Other characters are rasterized from the -font outline font, which
// defaults to Go Mono. Use -font none to skip them.
package main

import "context"
import "flag"
import "io"
import "log/slog"
import "os"
import "os/signal"
import "unicode"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

import "github.com/tinne26/btxt"
import "github.com/tinne26/btxt/font"
import "github.com/tinne26/btxt/synth"

var (
	flagSize = flag.Float64("size", 15, "pixels per em")
	flagHint = flag.Bool("hint", true, "snap strokes to the pixel grid")
	flagPositions = flag.Int("positions", 4, "horizontal sub-pixel positions per glyph")
	flagBits = flag.Int("bits", 4, "bits per pixel of the glyph images")
	flagCode = flag.Bool("code", false, "code font: a single image per glyph and whole pixel advances")
	flagWidthUnits = flag.Int("width-units", 0, "halfwidth adjustment for code fonts, in [0, 100]")
	flagAltBraille = flag.Bool("alt-braille", false, "draw placeholders for unset braille dots")
	flagWorkers = flag.Int("workers", 0, "synthesis workers (0 uses GOMAXPROCS)")
	flagChars = flag.String("chars", "", "characters to include")
	flagCharsFile = flag.String("chars-file", "", "file with further characters to include")
	flagFont = flag.String("font", "", "outline font path (.ttf or .otf), \"none\" to disable (default Go Mono)")
	flagOut = flag.String("out", "", "output file (default stdout)")
	flagPackage = flag.String("pkg", "main", "package name of the generated file")
	flagVariable = flag.String("var", "Font", "variable name of the generated font")
	flagPreview = flag.String("preview", "", "sample text drawn in the header comment")
	flagVerbose = flag.Bool("v", false, "log debug information")
)

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *flagVerbose { level = slog.LevelDebug }
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	btxt.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, log, os.Args[1 : ]); err != nil {
		log.Error("btxtgen failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, args []string) error {
	if !isIdentifier(*flagPackage) { return errors.Errorf("invalid package name %q", *flagPackage) }
	if !isIdentifier(*flagVariable) { return errors.Errorf("invalid variable name %q", *flagVariable) }

	text := *flagChars
	if *flagCharsFile != "" {
		extra, err := os.ReadFile(*flagCharsFile)
		if err != nil { return errors.Wrap(err, "read chars file") }
		text += string(extra)
	}
	if text == "" { return errors.New("no characters given (tip: -chars)") }

	config := synth.Config{
		PixelsPerEm: *flagSize,
		Hint: *flagHint,
		Code: *flagCode,
		WidthUnits: *flagWidthUnits,
		Positions: *flagPositions,
		BitDepth: *flagBits,
		Workers: *flagWorkers,
		AltBraille: *flagAltBraille,
	}
	outline, err := loadOutline(*flagFont, log)
	if err != nil { return err }
	config.Outline = outline
	if err := config.Validate(); err != nil { return err }

	table, err := synth.Build(ctx, config, text)
	if err != nil { return err }
	bitmapFont, err := font.FromTable(table, config)
	if err != nil { return err }
	kerning, err := font.KerningPairs(table, config)
	if err != nil { return err }
	if outline != nil {
		missing, err := font.MissingRunes(outline.Font(), text)
		if err != nil { return err }
		for _, r := range missing {
			if _, found := table.Get(string(r)); !found && !unicode.IsControl(r) {
				log.Warn("character not available", "char", string(r))
			}
		}
	}

	src := source{
		Package: *flagPackage,
		Variable: *flagVariable,
		Font: bitmapFont,
		Kerning: kerning,
		Preview: *flagPreview,
		Args: args,
	}
	code, err := src.generate()
	if err != nil { return err }

	var out io.Writer = os.Stdout
	if *flagOut != "" {
		file, err := os.Create(*flagOut)
		if err != nil { return errors.Wrap(err, "create output") }
		defer file.Close()
		out = file
	}
	if _, err := out.Write(code); err != nil { return errors.Wrap(err, "write output") }
	log.Info("font generated", "glyphs", table.Len(), "bytes", table.ApproxByteSize(), "out", *flagOut)
	return nil
}

// Loads the outline font at the given path, Go Mono if the path is
// empty, or nothing for "none". Fonts without a name are accepted.
func loadOutline(path string, log *slog.Logger) (*synth.OutlineSource, error) {
	if path == "none" { return nil, nil }
	sfntFont, name, err := parseOutline(path)
	if err != nil && errors.Cause(err) != font.ErrNotFound { return nil, err }
	log.Debug("outline font", "name", name, "path", path)
	return synth.NewOutlineSource(sfntFont), nil
}

func parseOutline(path string) (*sfnt.Font, string, error) {
	if path == "" { return font.ParseFromBytes(gomono.TTF) }
	return font.ParseFromPath(path)
}

func isIdentifier(name string) bool {
	if name == "" { return false }
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) { continue }
		if i > 0 && unicode.IsDigit(r) { continue }
		return false
	}
	return true
}
