package filter_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"

	"github.com/bsubei/squadrot/internal/domain/filter"
	"github.com/bsubei/squadrot/internal/domain/layer"
)

func mustLayer(attrs map[string]any) layer.Layer {
	base := map[string]any{
		"layer":    "X v1",
		"map":      "X",
		"gamemode": "AAS",
		"bugged":   false,
	}
	for k, v := range attrs {
		base[k] = v
	}
	l, err := layer.New(base)
	if err != nil {
		panic(err)
	}
	return l
}

func TestSpec(t *testing.T) {
	Convey("Given the any sentinel", t, func() {
		spec := filter.Any()

		Convey("It matches every layer and describes itself as any", func() {
			So(spec.Match(mustLayer(nil)), ShouldBeTrue)
			So(spec.Describe(), ShouldResemble, []string{"any"})
			So(spec.Attrs(), ShouldBeEmpty)
		})
	})

	Convey("Given a spec with several clauses", t, func() {
		spec, err := filter.New(
			filter.Clause{Attr: "gamemode", Values: []any{"AAS", "RAAS"}},
			filter.Clause{Attr: "map_size", Values: []any{"large"}},
			filter.Clause{Attr: "helicopters", Values: []any{true}},
		)
		So(err, ShouldBeNil)

		Convey("Clauses AND together while values OR within a clause", func() {
			So(spec.Match(mustLayer(map[string]any{
				"gamemode": "RAAS", "map_size": "large", "helicopters": true,
			})), ShouldBeTrue)
			So(spec.Match(mustLayer(map[string]any{
				"gamemode": "AAS", "map_size": "large", "helicopters": true,
			})), ShouldBeTrue)
			// One failing clause sinks the whole spec.
			So(spec.Match(mustLayer(map[string]any{
				"gamemode": "Invasion", "map_size": "large", "helicopters": true,
			})), ShouldBeFalse)
			So(spec.Match(mustLayer(map[string]any{
				"gamemode": "AAS", "map_size": "small", "helicopters": true,
			})), ShouldBeFalse)
			So(spec.Match(mustLayer(map[string]any{
				"gamemode": "AAS", "map_size": "large", "helicopters": false,
			})), ShouldBeFalse)
		})

		Convey("The description lists literal values in clause order, booleans by attribute name", func() {
			So(spec.Describe(), ShouldResemble, []string{"AAS", "RAAS", "large", "helicopters"})
		})

		Convey("A layer missing a referenced attribute does not match", func() {
			l, err := layer.New(map[string]any{
				"layer": "Y v1", "map": "Y", "gamemode": "AAS", "bugged": false,
			})
			So(err, ShouldBeNil)
			So(spec.Match(l), ShouldBeFalse)
		})
	})

	Convey("Given a spec on the team alias", t, func() {
		spec, err := filter.New(filter.Clause{Attr: "team", Values: []any{"INS", "RU"}})
		So(err, ShouldBeNil)

		Convey("It matches when either team slot carries an accepted value", func() {
			So(spec.Match(mustLayer(map[string]any{"team1": "US", "team2": "INS"})), ShouldBeTrue)
			So(spec.Match(mustLayer(map[string]any{"team1": "RU", "team2": "US"})), ShouldBeTrue)
			So(spec.Match(mustLayer(map[string]any{"team1": "US", "team2": "GB"})), ShouldBeFalse)
		})

		Convey("Attrs expands the alias to both team slots", func() {
			So(spec.Attrs(), ShouldResemble, []string{"team1", "team2"})
		})
	})

	Convey("Given a pool of candidates", t, func() {
		spec, _ := filter.New(filter.Clause{Attr: "gamemode", Values: []any{"Skirmish"}})
		pool := []layer.Layer{
			mustLayer(map[string]any{"gamemode": "Skirmish"}),
			mustLayer(map[string]any{"gamemode": "AAS"}),
			mustLayer(map[string]any{"gamemode": "Skirmish"}),
		}

		Convey("Apply returns only the matching subset", func() {
			subset := filter.Apply(spec, pool)
			So(len(subset), ShouldEqual, 2)
			for _, l := range subset {
				So(l.Gamemode(), ShouldEqual, "Skirmish")
			}
		})

		Convey("Apply may legitimately return an empty subset", func() {
			none, _ := filter.New(filter.Clause{Attr: "gamemode", Values: []any{"TC"}})
			So(filter.Apply(none, pool), ShouldBeEmpty)
		})
	})
}

func TestSpecYAML(t *testing.T) {
	Convey("Given YAML slot entries", t, func() {
		Convey("The any sentinel parses case-insensitively", func() {
			var specs []filter.Spec
			err := yaml.Unmarshal([]byte("- any\n- ANY\n- Any\n"), &specs)
			So(err, ShouldBeNil)
			So(len(specs), ShouldEqual, 3)
			for _, s := range specs {
				So(s.IsAny(), ShouldBeTrue)
				So(s.Describe(), ShouldResemble, []string{"any"})
			}
		})

		Convey("A filter mapping parses with configuration order preserved", func() {
			src := "- gamemode: [AAS, RAAS]\n  map_size: large\n  helicopters: true\n"
			var specs []filter.Spec
			err := yaml.Unmarshal([]byte(src), &specs)
			So(err, ShouldBeNil)
			So(len(specs), ShouldEqual, 1)
			So(specs[0].Describe(), ShouldResemble, []string{"AAS", "RAAS", "large", "helicopters"})
			So(specs[0].Match(mustLayer(map[string]any{
				"gamemode": "RAAS", "map_size": "large", "helicopters": true,
			})), ShouldBeTrue)
		})

		Convey("A scalar that is not the sentinel is rejected", func() {
			var specs []filter.Spec
			err := yaml.Unmarshal([]byte("- blargh\n"), &specs)
			So(err, ShouldNotBeNil)
		})

		Convey("A non-string non-mapping entry is rejected", func() {
			var specs []filter.Spec
			err := yaml.Unmarshal([]byte("- 123\n"), &specs)
			So(err, ShouldNotBeNil)
		})

		Convey("An empty value list is rejected", func() {
			var specs []filter.Spec
			err := yaml.Unmarshal([]byte("- gamemode: []\n"), &specs)
			So(err, ShouldNotBeNil)
		})
	})
}
