package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bsubei/squadrot/internal/adapters/catalog"
)

const catalogJSON = `[
  {"layer": "Chora AAS v1", "map": "Chora", "gamemode": "AAS", "bugged": false,
   "map_size": "medium", "helicopters": false, "team1": "US", "team2": "INS"},
  {"layer": "Belaya RAAS v1", "map": "Belaya", "gamemode": "RAAS", "bugged": true,
   "map_size": "large", "helicopters": true, "team1": "RU", "team2": "GB"}
]`

func TestDecode(t *testing.T) {
	Convey("Given well-formed catalog JSON", t, func() {
		layers, err := catalog.Decode([]byte(catalogJSON))

		Convey("Then typed layers come back in order", func() {
			So(err, ShouldBeNil)
			So(len(layers), ShouldEqual, 2)
			So(layers[0].Name(), ShouldEqual, "Chora AAS v1")
			So(layers[0].Bugged(), ShouldBeFalse)
			So(layers[1].Name(), ShouldEqual, "Belaya RAAS v1")
			So(layers[1].Bugged(), ShouldBeTrue)
		})
	})

	Convey("Given malformed catalog JSON", t, func() {
		Convey("Invalid JSON is a decode error", func() {
			_, err := catalog.Decode([]byte("not json"))
			So(errors.Is(err, catalog.ErrDecode), ShouldBeTrue)
		})

		Convey("A non-array top level is a decode error", func() {
			_, err := catalog.Decode([]byte(`{"layer": "x"}`))
			So(errors.Is(err, catalog.ErrDecode), ShouldBeTrue)
		})

		Convey("A non-object record is a decode error", func() {
			_, err := catalog.Decode([]byte(`["not a record", {"layer": "x"}]`))
			So(errors.Is(err, catalog.ErrDecode), ShouldBeTrue)
		})

		Convey("A record missing required attributes is a decode error", func() {
			_, err := catalog.Decode([]byte(`[{"layer": "x", "map": "y"}]`))
			So(errors.Is(err, catalog.ErrDecode), ShouldBeTrue)
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	Convey("Given a catalog file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "layers.json")
		So(os.WriteFile(path, []byte(catalogJSON), 0o644), ShouldBeNil)

		src := catalog.New(catalog.WithPath(path))
		layers, err := src.Load(context.Background())

		Convey("Then the catalog loads", func() {
			So(err, ShouldBeNil)
			So(len(layers), ShouldEqual, 2)
		})

		Convey("A missing file is a load error", func() {
			missing := catalog.New(catalog.WithPath(filepath.Join(dir, "nope.json")))
			_, err := missing.Load(context.Background())
			So(errors.Is(err, catalog.ErrLoad), ShouldBeTrue)
		})
	})

	Convey("Given a source with neither path nor URL", t, func() {
		_, err := catalog.New().Load(context.Background())
		So(errors.Is(err, catalog.ErrLoad), ShouldBeTrue)
	})
}

func TestLoadFromURL(t *testing.T) {
	Convey("Given a catalog served over HTTP", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(catalogJSON))
		}))
		defer srv.Close()

		src := catalog.New(catalog.WithURL(srv.URL))
		layers, err := src.Load(context.Background())

		Convey("Then the catalog loads from the URL", func() {
			So(err, ShouldBeNil)
			So(len(layers), ShouldEqual, 2)
		})
	})

	Convey("Given a server returning an error status", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := catalog.New(catalog.WithURL(srv.URL)).Load(context.Background())
		So(errors.Is(err, catalog.ErrLoad), ShouldBeTrue)
	})

	Convey("Given both a path and a URL", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(catalogJSON))
		}))
		defer srv.Close()

		src := catalog.New(catalog.WithPath("/does/not/exist.json"), catalog.WithURL(srv.URL))
		_, err := src.Load(context.Background())

		Convey("Then the URL wins", func() {
			So(err, ShouldBeNil)
		})
	})
}
