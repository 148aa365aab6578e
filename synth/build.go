package synth

import "context"

import "golang.org/x/sync/errgroup"
import "golang.org/x/text/unicode/norm"
import "github.com/pkg/errors"

import "github.com/tinne26/btxt/cache"
import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/grid"
import "github.com/tinne26/btxt/internal/logger"

// Synthesizes the glyphs for all the distinct runes in the given text,
// once normalized to NFC, and returns them in a new table keyed by the
// string of each rune.
// Runes without a procedural drawing are rasterized from the outline
// source, if any, and skipped otherwise.
//
// The work is split among config.Workers goroutines. The contents of
// the resulting table don't depend on the number of workers.
func Build(ctx context.Context, config Config, text ...string) (*cache.Table, error) {
	if err := config.Validate(); err != nil { return nil, err }
	table := cache.NewTable(config.MaxBytes)
	err := BuildInto(ctx, table, config, text...)
	if err != nil { return nil, err }
	return table, nil
}

// Like [Build](), but adds the glyphs to an existing table. Runes
// already present in the table are not synthesized again.
func BuildInto(ctx context.Context, table *cache.Table, config Config, text ...string) error {
	if err := config.Validate(); err != nil { return err }
	metrics := config.Metrics()
	runes := distinctRunes(text)

	// round-robin sharding
	numShards := config.workers()
	if numShards > len(runes) { numShards = len(runes) }
	shards := make([][]rune, numShards)
	for i, r := range runes {
		shards[i % numShards] = append(shards[i % numShards], r)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		i, shard := i, shard
		group.Go(func() error {
			logger.Get().Debug("synth shard", "shard", i, "runes", len(shard))
			return buildShard(groupCtx, table, metrics, &config, shard)
		})
	}
	if err := group.Wait(); err != nil { return err }

	logger.Get().Info("synth build done", "runes", len(runes), "glyphs", table.Len(), "bytes", table.ApproxByteSize())
	return nil
}

func buildShard(ctx context.Context, table *cache.Table, metrics *grid.Metrics, config *Config, shard []rune) error {
	worker := newSynthesizer()
	for _, r := range shard {
		if err := ctx.Err(); err != nil { return err }
		key := string(r)
		if table.Has(key) { continue }
		glyphs, err := worker.synthesize(r, metrics, config)
		if err != nil { return errors.Wrapf(err, "synthesize %q", r) }
		if len(glyphs) == 0 { continue }
		table.Insert(key, glyphs)
	}
	return nil
}

// Synthesizes the glyphs for a single rune.
func (self *synthesizer) synthesize(r rune, metrics *grid.Metrics, config *Config) ([]glyph.Glyph, error) {
	drawing, found := Lookup(r)
	if found {
		if drawing.Shape.Family == FamilyBraille { drawing.Shape.Placeholders = config.AltBraille }
		return self.scale(drawing, metrics, config.Positions, config.BitDepth)
	}
	if config.Outline == nil { return nil, nil }
	return self.outline(config.Outline, r, metrics, config)
}

// Returns the distinct runes of the text in NFC, in order of appearance.
func distinctRunes(text []string) []rune {
	seen := make(map[rune]struct{}, 128)
	runes := make([]rune, 0, 128)
	for _, str := range text {
		for _, r := range norm.NFC.String(str) {
			if _, found := seen[r]; found { continue }
			seen[r] = struct{}{}
			runes = append(runes, r)
		}
	}
	return runes
}
