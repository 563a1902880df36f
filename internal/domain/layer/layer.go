// Package layer contains the map-layer record and the shrinking candidate
// pool the rotation is drawn from.
package layer

import (
	"fmt"
	"sort"
	"strconv"
)

// Attribute names with dedicated accessors. Every other attribute is reached
// through Attr by the name the catalog uses.
const (
	AttrName     = "layer"
	AttrMap      = "map"
	AttrGamemode = "gamemode"
	AttrBugged   = "bugged"
)

// Value is the normalized scalar form of a layer attribute. Catalog JSON and
// pattern YAML carry strings, booleans and numbers; all of them compare by
// this one canonical form.
type Value string

// Normalize converts a decoded scalar into its canonical Value. The second
// return is false for nil and for non-scalar values.
func Normalize(v any) (Value, bool) {
	switch t := v.(type) {
	case string:
		return Value(t), true
	case bool:
		return Value(strconv.FormatBool(t)), true
	case int:
		return Value(strconv.Itoa(t)), true
	case int64:
		return Value(strconv.FormatInt(t, 10)), true
	case float64:
		return Value(strconv.FormatFloat(t, 'f', -1, 64)), true
	default:
		return "", false
	}
}

// Layer is one selectable map configuration. It is immutable after New; the
// named fields every catalog record must carry are promoted, the rest live
// in the attribute map.
type Layer struct {
	name     string
	mapName  string
	gamemode string
	bugged   bool
	attrs    map[string]Value
}

// New builds a Layer from a decoded catalog record. The record must carry
// the layer, map, gamemode and bugged attributes; any attribute with a null
// value is treated as absent.
func New(record map[string]any) (Layer, error) {
	attrs := make(map[string]Value, len(record))
	for k, v := range record {
		if v == nil {
			continue
		}
		nv, ok := Normalize(v)
		if !ok {
			return Layer{}, fmt.Errorf("attribute %q has non-scalar value %v", k, v)
		}
		attrs[k] = nv
	}

	name, ok := record[AttrName].(string)
	if !ok || name == "" {
		return Layer{}, fmt.Errorf("record is missing the %q attribute", AttrName)
	}
	mapName, ok := record[AttrMap].(string)
	if !ok || mapName == "" {
		return Layer{}, fmt.Errorf("layer %q is missing the %q attribute", name, AttrMap)
	}
	gamemode, ok := record[AttrGamemode].(string)
	if !ok || gamemode == "" {
		return Layer{}, fmt.Errorf("layer %q is missing the %q attribute", name, AttrGamemode)
	}
	bugged, ok := record[AttrBugged].(bool)
	if !ok {
		return Layer{}, fmt.Errorf("layer %q is missing the boolean %q attribute", name, AttrBugged)
	}

	return Layer{
		name:     name,
		mapName:  mapName,
		gamemode: gamemode,
		bugged:   bugged,
		attrs:    attrs,
	}, nil
}

// Name returns the unique layer identifier, e.g. "Al Basrah AAS v1".
func (l Layer) Name() string { return l.name }

// Map returns the map name the layer is played on, e.g. "Al Basrah".
func (l Layer) Map() string { return l.mapName }

// Gamemode returns the layer's gamemode, e.g. "RAAS".
func (l Layer) Gamemode() string { return l.gamemode }

// Bugged reports whether the layer is flagged as defective.
func (l Layer) Bugged() bool { return l.bugged }

// Attr returns the normalized value of the named attribute and whether the
// attribute is present (non-null) on this layer.
func (l Layer) Attr(name string) (Value, bool) {
	v, ok := l.attrs[name]
	return v, ok
}

// Has reports whether the named attribute is present with a non-null value.
func (l Layer) Has(name string) bool {
	_, ok := l.attrs[name]
	return ok
}

// AttrNames returns the sorted attribute names present on this layer.
func (l Layer) AttrNames() []string {
	names := make([]string, 0, len(l.attrs))
	for k := range l.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
