package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/wirekit/config"
	pkgerrors "github.com/c360/wirekit/errors"
)

// expectLoaderError loads data and asserts the exact TopologyLoader message.
func expectLoaderError(t *testing.T, data, want string) {
	t.Helper()
	var top Topology
	err := Load([]byte(data), &top)
	require.Error(t, err)

	var loaderErr *pkgerrors.TopologyLoader
	require.ErrorAs(t, err, &loaderErr)
	assert.Equal(t, want, err.Error())
}

func TestLoadFileNotAccessible(t *testing.T) {
	var top Topology
	err := LoadFile("fake_path", &top)
	require.Error(t, err)
	assert.Equal(t, `Topology file not accessible. Path: "fake_path".`, err.Error())
}

func TestLoadSyntaxError(t *testing.T) {
	var top Topology
	err := Load([]byte(`[ { "type": `), &top)
	require.Error(t, err)

	var loaderErr *pkgerrors.TopologyLoader
	require.ErrorAs(t, err, &loaderErr)
	assert.Contains(t, err.Error(), "Topology json syntax error. Details:\n")
}

func TestLoadTopologyNotAnArray(t *testing.T) {
	expectLoaderError(t, `{ "object": 123 }`,
		"Topology json shall be an array.")
}

func TestLoadComponentNotAnObject(t *testing.T) {
	expectLoaderError(t, `[ 123 ]`,
		"Component{#0} - Component shall be an object.")
}

func TestLoadComponentType(t *testing.T) {
	expectLoaderError(t, `[ {} ]`,
		"Component{#0} - Component type shall be specified.")
	expectLoaderError(t, `[ { "type": 123 } ]`,
		"Component{#0} - Component type shall be a string.")
	expectLoaderError(t, `[ { "type": "" } ]`,
		"Component{#0} - Component type shall not be empty.")
}

func TestLoadComponentId(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType" } ]`,
		"Component{#0} - Component id shall be specified.")
	expectLoaderError(t, `[ { "type": "MyType", "id": 123 } ]`,
		"Component{#0} - Component id shall be a string.")
	expectLoaderError(t, `[ { "type": "MyType", "id": "" } ]`,
		"Component{#0} - Component id shall not be empty.")
}

func TestLoadComponentIdDuplicated(t *testing.T) {
	var top Topology
	err := Load([]byte(`[
		{ "type": "MyType", "id": "x" },
		{ "type": "OtherType", "id": "x" }
	]`), &top)
	require.Error(t, err)

	var dup *pkgerrors.ComponentIdDuplicated
	require.ErrorAs(t, err, &dup)
}

func TestLoadDependenciesNotAnArray(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "dependencies": "myDep" } ]`,
		`Component{#0, "MyType" : "myId"} - Dependencies shall be an array.`)
}

func TestLoadDependencyEmpty(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "dependencies": [ "myDep", "" ] } ]`,
		`Component{#0, "MyType" : "myId"} : Dependency{#1} - Dependency id shall not be empty.`)
}

func TestLoadDependencyNotAString(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "dependencies": [ "myDep", 123 ] } ]`,
		`Component{#0, "MyType" : "myId"} : Dependency{#1} - Dependency type shall be a string.`)
}

func TestLoadConfigNotAnObject(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": [ 123 ] } ]`,
		`Component{#0, "MyType" : "myId"} - Config shall be an object.`)
}

func TestLoadConfigEmptyKey(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "": "value" } } ]`,
		`Component{#0, "MyType" : "myId"} - Config shall not consist of empty keys.`)
}

func TestLoadConfigEntryFloat(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": 1.1 } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key"} - `+
			`Config entry type shall be one of {bool, ungigned int, signed int, string, object}.`)
}

func TestLoadConfigEntryNull(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": null } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key"} - `+
			`Config entry type shall be one of {bool, ungigned int, signed int, string, object}.`)
}

func TestLoadConfigEntryObjectSizeNot1(t *testing.T) {
	expectLoaderError(t,
		`[ { "type": "MyType", "id": "myId", "config": { "key": { "uint8_t": 1, "uint32_t": 2 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key"} - Config entry object shall be of size 1.`)
}

func TestLoadConfigEntryObjectTypeUnknown(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "uint10_t": 1 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key"} - Config entry object type shall be one of `+
			`{uint8_t, int8_t, uint16_t, int16_t, uint32_t, int32_t, uint64_t, int64_t}.`)
}

func TestLoadConfigEntryObjectValueNotUnsigned(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "uint8_t": -10 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key", uint8_t} - `+
			`Config entry value type shall be unsigned integer.`)
}

func TestLoadConfigEntryObjectValueNotInteger(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "int16_t": 1.1 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key", int16_t} - Config entry value type shall be integer.`)
}

func TestLoadConfigEntryObjectValueOutOfRange(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "int8_t": 511 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key", int8_t{511}} - `+
			`Config entry value shall be in range of its declared type.`)

	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "uint16_t": 70000 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key", uint16_t{70000}} - `+
			`Config entry value shall be in range of its declared type.`)
}

func TestLoadConfigEntryObjectNegativeOutOfRange(t *testing.T) {
	expectLoaderError(t, `[ { "type": "MyType", "id": "myId", "config": { "key": { "int8_t": -200 } } } ]`,
		`Component{#0, "MyType" : "myId"} : Config{"key", int8_t{-200}} - `+
			`Config entry value shall be in range of its declared type.`)
}

// entryValue asserts the entry under key has the given stored type name and
// returns its value read back at T.
func entryValue[T config.Scalar](t *testing.T, cfg config.Config, key, typeName string) T {
	t.Helper()
	entry, ok := cfg.Get(key)
	require.True(t, ok, "config entry %q", key)
	require.Equal(t, typeName, entry.Type())

	value, err := config.Value[T](entry)
	require.NoError(t, err)
	return value
}

func TestLoadGolden(t *testing.T) {
	data := []byte(`
	[
		{
			"type": "type0",
			"id": "id0"
		},
		{
			"type": "type1",
			"id": "id1"
		},
		{
			"type": "type1",
			"id": "id2",
			"dependencies": [ "id0" ]
		},
		{
			"type": "type2",
			"id": "id3",
			"dependencies": [ "id0", "id2" ],
			"config": {
				"key0": 1,
				"key1": { "uint8_t": 255 },
				"key2": "stringValue",
				"key3": -1
			}
		}
	]
	`)

	var top Topology
	require.NoError(t, Load(data, &top))
	require.Len(t, top, 4)

	assert.Equal(t, "type0", top[0].Type)
	assert.Equal(t, "id0", top[0].ID)
	assert.Empty(t, top[0].DependencyIDs)
	assert.Empty(t, top[0].Config)

	assert.Equal(t, "type1", top[1].Type)
	assert.Equal(t, "id1", top[1].ID)
	assert.Empty(t, top[1].DependencyIDs)
	assert.Empty(t, top[1].Config)

	assert.Equal(t, "type1", top[2].Type)
	assert.Equal(t, "id2", top[2].ID)
	assert.Equal(t, []string{"id0"}, top[2].DependencyIDs)
	assert.Empty(t, top[2].Config)

	assert.Equal(t, "type2", top[3].Type)
	assert.Equal(t, "id3", top[3].ID)
	assert.Equal(t, []string{"id0", "id2"}, top[3].DependencyIDs)
	require.Len(t, top[3].Config, 4)

	assert.Equal(t, uint64(1), entryValue[uint64](t, top[3].Config, "key0", "uint64"))
	assert.Equal(t, uint8(255), entryValue[uint8](t, top[3].Config, "key1", "uint8"))
	assert.Equal(t, "stringValue", entryValue[string](t, top[3].Config, "key2", "string"))
	assert.Equal(t, int64(-1), entryValue[int64](t, top[3].Config, "key3", "int64"))
}

func TestLoadTypedEntriesAllWidths(t *testing.T) {
	data := []byte(`[ { "type": "MyType", "id": "myId", "config": {
		"u8":  { "uint8_t": 255 },
		"u16": { "uint16_t": 65535 },
		"u32": { "uint32_t": 4294967295 },
		"u64": { "uint64_t": 18446744073709551615 },
		"s8":  { "int8_t": -128 },
		"s16": { "int16_t": -32768 },
		"s32": { "int32_t": -2147483648 },
		"s64": { "int64_t": -9223372036854775808 }
	} } ]`)

	var top Topology
	require.NoError(t, Load(data, &top))
	require.Len(t, top, 1)
	cfg := top[0].Config

	assert.Equal(t, uint8(255), entryValue[uint8](t, cfg, "u8", "uint8"))
	assert.Equal(t, uint16(65535), entryValue[uint16](t, cfg, "u16", "uint16"))
	assert.Equal(t, uint32(4294967295), entryValue[uint32](t, cfg, "u32", "uint32"))
	assert.Equal(t, uint64(18446744073709551615), entryValue[uint64](t, cfg, "u64", "uint64"))
	assert.Equal(t, int8(-128), entryValue[int8](t, cfg, "s8", "int8"))
	assert.Equal(t, int16(-32768), entryValue[int16](t, cfg, "s16", "int16"))
	assert.Equal(t, int32(-2147483648), entryValue[int32](t, cfg, "s32", "int32"))
	assert.Equal(t, int64(-9223372036854775808), entryValue[int64](t, cfg, "s64", "int64"))
}
