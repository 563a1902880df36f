// Package layergen produces synthetic but schema-complete layer catalogs
// for demos and tests.
package layergen

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/bsubei/squadrot/internal/domain/layer"
)

// Generation tuning constants.
const (
	defaultSeed     = 1
	maxVersions     = 3
	buggedOneIn     = 20
	helicopterOneIn = 2
)

type mapInfo struct {
	name string
	size string
}

var maps = []mapInfo{
	{"Al Basrah", "medium"},
	{"Belaya", "medium"},
	{"Chora", "medium"},
	{"Fool's Road", "small"},
	{"Gorodok", "large"},
	{"Kamdesh", "large"},
	{"Kohat", "large"},
	{"Logar Valley", "small"},
	{"Mestia", "small"},
	{"Narva", "medium"},
	{"Skorpo", "large"},
	{"Sumari", "small"},
	{"Tallil Outskirts", "large"},
	{"Yehorivka", "large"},
}

var gamemodes = []string{"AAS", "RAAS", "Invasion", "Skirmish", "TC"}

var factions = []string{"US", "RU", "GB", "CAF", "INS", "MEA"}

// Generator builds synthetic catalogs. The same seed always yields the same
// catalog.
type Generator struct {
	rng *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the generator's random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic fixture data
	}
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(defaultSeed)) //nolint:gosec // synthetic fixture data
	}
	return g
}

// Records returns raw catalog records: every map crossed with every
// gamemode, one to three versions each, with size, team, helicopter and
// bugged attributes filled in.
func (g *Generator) Records() []map[string]any {
	var records []map[string]any
	for _, m := range maps {
		for _, gm := range gamemodes {
			versions := 1 + g.rng.Intn(maxVersions)
			for v := 1; v <= versions; v++ {
				team1 := factions[g.rng.Intn(len(factions))]
				team2 := factions[g.rng.Intn(len(factions))]
				for team2 == team1 {
					team2 = factions[g.rng.Intn(len(factions))]
				}
				records = append(records, map[string]any{
					"layer":       fmt.Sprintf("%s %s v%d", m.name, gm, v),
					"map":         m.name,
					"gamemode":    gm,
					"version":     fmt.Sprintf("v%d", v),
					"map_size":    m.size,
					"team1":       team1,
					"team2":       team2,
					"helicopters": m.size == "large" && g.rng.Intn(helicopterOneIn) == 0,
					"night":       g.rng.Intn(4) == 0,
					"bugged":      g.rng.Intn(buggedOneIn) == 0,
				})
			}
		}
	}
	return records
}

// Catalog returns the synthetic catalog as typed layers.
func (g *Generator) Catalog() ([]layer.Layer, error) {
	records := g.Records()
	layers := make([]layer.Layer, 0, len(records))
	for _, rec := range records {
		l, err := layer.New(rec)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// JSON returns the synthetic catalog in the same shape a real layers.json
// carries.
func (g *Generator) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(g.Records(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sample catalog: %w", err)
	}
	return data, nil
}
