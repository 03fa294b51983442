package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/c360/wirekit/errors"
)

// Document formats accepted by the loaders. The format name only shows up in
// the two top-level error messages; everything below the document root is
// format-agnostic.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// LoadFile loads a topology from a JSON file.
func LoadFile(path string, top *Topology) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &pkgerrors.TopologyLoader{Msg: fmt.Sprintf("Topology file not accessible. Path: %q.", path)}
	}
	return Load(data, top)
}

// Load loads a topology from JSON data. The document must be an array of
// component objects; any schema violation fails with a TopologyLoader error
// carrying a stable message.
func Load(data []byte, top *Topology) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return syntaxError(formatJSON, err.Error())
	}
	if dec.More() {
		return syntaxError(formatJSON, "unexpected content after top-level value")
	}
	return load(doc, formatJSON, top)
}

func syntaxError(format, details string) error {
	return &pkgerrors.TopologyLoader{Msg: fmt.Sprintf("Topology %s syntax error. Details:\n%s", format, details)}
}

func loaderError(format string, args ...any) error {
	return &pkgerrors.TopologyLoader{Msg: fmt.Sprintf(format, args...)}
}

// load walks a decoded document. Numbers are json.Number so signedness and
// floatness survive decoding; the YAML loader converts its node tree to the
// same shapes before calling in here.
func load(doc any, format string, top *Topology) error {
	arr, ok := doc.([]any)
	if !ok {
		return loaderError("Topology %s shall be an array.", format)
	}

	builder := NewBuilder(top)
	for idx, element := range arr {
		if err := loadComponent(builder, idx, element); err != nil {
			return err
		}
	}
	return nil
}

func loadComponent(builder *Builder, idx int, element any) error {
	obj, ok := element.(map[string]any)
	if !ok {
		return loaderError("Component{#%d} - Component shall be an object.", idx)
	}

	typ, err := loadIdentity(idx, obj, "type")
	if err != nil {
		return err
	}
	id, err := loadIdentity(idx, obj, "id")
	if err != nil {
		return err
	}

	entryBuilder, err := builder.Component(typ, id)
	if err != nil {
		return err
	}

	if err := loadDependencies(entryBuilder, idx, typ, id, obj); err != nil {
		return err
	}
	return loadConfig(entryBuilder, idx, typ, id, obj)
}

// loadIdentity extracts the "type" or "id" field; the error texts differ
// only in the field name.
func loadIdentity(idx int, obj map[string]any, field string) (string, error) {
	raw, present := obj[field]
	if !present {
		return "", loaderError("Component{#%d} - Component %s shall be specified.", idx, field)
	}
	value, ok := raw.(string)
	if !ok {
		return "", loaderError("Component{#%d} - Component %s shall be a string.", idx, field)
	}
	if value == "" {
		return "", loaderError("Component{#%d} - Component %s shall not be empty.", idx, field)
	}
	return value, nil
}

func loadDependencies(eb *EntryBuilder, idx int, typ, id string, obj map[string]any) error {
	raw, present := obj["dependencies"]
	if !present {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return loaderError("Component{#%d, %q : %q} - Dependencies shall be an array.", idx, typ, id)
	}
	for didx, element := range arr {
		depID, ok := element.(string)
		if !ok {
			return loaderError("Component{#%d, %q : %q} : Dependency{#%d} - Dependency type shall be a string.",
				idx, typ, id, didx)
		}
		if depID == "" {
			return loaderError("Component{#%d, %q : %q} : Dependency{#%d} - Dependency id shall not be empty.",
				idx, typ, id, didx)
		}
		eb.Dependency(depID)
	}
	return nil
}

func loadConfig(eb *EntryBuilder, idx int, typ, id string, obj map[string]any) error {
	raw, present := obj["config"]
	if !present {
		return nil
	}
	cfg, ok := raw.(map[string]any)
	if !ok {
		return loaderError("Component{#%d, %q : %q} - Config shall be an object.", idx, typ, id)
	}

	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "" {
			return loaderError("Component{#%d, %q : %q} - Config shall not consist of empty keys.", idx, typ, id)
		}
		if err := loadConfigEntry(eb, idx, typ, id, key, cfg[key]); err != nil {
			return err
		}
	}
	return nil
}

func loadConfigEntry(eb *EntryBuilder, idx int, typ, id, key string, raw any) error {
	switch value := raw.(type) {
	case bool:
		return SetConfig(eb, key, value)
	case json.Number:
		s := value.String()
		if isFloat(s) {
			break
		}
		// A literal beyond 64 bits is not representable as an integral
		// either; it falls through to the entry-type error like a float.
		if strings.HasPrefix(s, "-") {
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				break
			}
			return SetConfig(eb, key, i)
		}
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			break
		}
		return SetConfig(eb, key, u)
	case string:
		return SetConfig(eb, key, value)
	case map[string]any:
		return loadTypedConfigEntry(eb, idx, typ, id, key, value)
	}
	return loaderError(
		"Component{#%d, %q : %q} : Config{%q} - Config entry type shall be one of {bool, ungigned int, signed int, string, object}.",
		idx, typ, id, key)
}

// integralType describes one declared config entry type of the single-key
// object form {"<intType>": <number>}.
type integralType struct {
	signed bool
	bits   int
}

var integralTypes = map[string]integralType{
	"uint8_t":  {signed: false, bits: 8},
	"uint16_t": {signed: false, bits: 16},
	"uint32_t": {signed: false, bits: 32},
	"uint64_t": {signed: false, bits: 64},
	"int8_t":   {signed: true, bits: 8},
	"int16_t":  {signed: true, bits: 16},
	"int32_t":  {signed: true, bits: 32},
	"int64_t":  {signed: true, bits: 64},
}

func loadTypedConfigEntry(eb *EntryBuilder, idx int, typ, id, key string, obj map[string]any) error {
	if len(obj) != 1 {
		return loaderError("Component{#%d, %q : %q} : Config{%q} - Config entry object shall be of size 1.",
			idx, typ, id, key)
	}

	var entryType string
	var raw any
	for entryType, raw = range obj {
	}

	decl, known := integralTypes[entryType]
	if !known {
		return loaderError(
			"Component{#%d, %q : %q} : Config{%q} - Config entry object type shall be one of "+
				"{uint8_t, int8_t, uint16_t, int16_t, uint32_t, int32_t, uint64_t, int64_t}.",
			idx, typ, id, key)
	}

	num, isNumber := raw.(json.Number)
	if decl.signed {
		if !isNumber || isFloat(num.String()) {
			return loaderError("Component{#%d, %q : %q} : Config{%q, %s} - Config entry value type shall be integer.",
				idx, typ, id, key, entryType)
		}
		return setSigned(eb, idx, typ, id, key, entryType, decl.bits, num.String())
	}
	if !isNumber || isFloat(num.String()) || strings.HasPrefix(num.String(), "-") {
		return loaderError("Component{#%d, %q : %q} : Config{%q, %s} - Config entry value type shall be unsigned integer.",
			idx, typ, id, key, entryType)
	}
	return setUnsigned(eb, idx, typ, id, key, entryType, decl.bits, num.String())
}

func rangeError(idx int, typ, id, key, entryType, value string) error {
	return loaderError(
		"Component{#%d, %q : %q} : Config{%q, %s{%s}} - Config entry value shall be in range of its declared type.",
		idx, typ, id, key, entryType, value)
}

func setUnsigned(eb *EntryBuilder, idx int, typ, id, key, entryType string, bits int, literal string) error {
	u, err := strconv.ParseUint(literal, 10, 64)
	if err != nil {
		return rangeError(idx, typ, id, key, entryType, literal)
	}
	if bits < 64 && u > (uint64(1)<<bits)-1 {
		return rangeError(idx, typ, id, key, entryType, strconv.FormatUint(u, 10))
	}
	switch bits {
	case 8:
		return SetConfig(eb, key, uint8(u))
	case 16:
		return SetConfig(eb, key, uint16(u))
	case 32:
		return SetConfig(eb, key, uint32(u))
	default:
		return SetConfig(eb, key, u)
	}
}

func setSigned(eb *EntryBuilder, idx int, typ, id, key, entryType string, bits int, literal string) error {
	i, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return rangeError(idx, typ, id, key, entryType, literal)
	}
	if bits < 64 && (i < -(int64(1)<<(bits-1)) || i > (int64(1)<<(bits-1))-1) {
		return rangeError(idx, typ, id, key, entryType, strconv.FormatInt(i, 10))
	}
	switch bits {
	case 8:
		return SetConfig(eb, key, int8(i))
	case 16:
		return SetConfig(eb, key, int16(i))
	case 32:
		return SetConfig(eb, key, int32(i))
	default:
		return SetConfig(eb, key, i)
	}
}

// isFloat reports whether a number literal carries a fraction or exponent,
// which disqualifies it from every integral slot of the schema.
func isFloat(literal string) bool {
	return strings.ContainsAny(literal, ".eE")
}
