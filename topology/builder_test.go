package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/wirekit/config"
	pkgerrors "github.com/c360/wirekit/errors"
)

func TestBuilderClearsTarget(t *testing.T) {
	top := Topology{{Type: "stale.Type", ID: "stale"}}

	NewBuilder(&top)
	assert.Empty(t, top)
}

func TestBuilderAppendsEntries(t *testing.T) {
	var top Topology
	builder := NewBuilder(&top)

	eb, err := builder.Component("motor.Motor", "m0")
	require.NoError(t, err)
	eb.Dependency("bus0").Dependency("bus1")
	require.NoError(t, SetConfig[uint16](eb, "rpm", 3000))
	require.NoError(t, SetConfig(eb, "label", "left wheel"))

	_, err = builder.Component("motor.Motor", "m1")
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "motor.Motor", top[0].Type)
	assert.Equal(t, "m0", top[0].ID)
	assert.Equal(t, []string{"bus0", "bus1"}, top[0].DependencyIDs)

	rpm, err := config.Value[uint16](top[0].Config["rpm"])
	require.NoError(t, err)
	assert.Equal(t, uint16(3000), rpm)

	assert.Empty(t, top[1].DependencyIDs)
	assert.Empty(t, top[1].Config)
}

func TestBuilderComponentIdDuplicated(t *testing.T) {
	var top Topology
	builder := NewBuilder(&top)

	_, err := builder.Component("motor.Motor", "x")
	require.NoError(t, err)

	_, err = builder.Component("pump.Pump", "x")
	require.Error(t, err)

	var dup *pkgerrors.ComponentIdDuplicated
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, `Component id duplicated for component pump.Pump{"x"}.`, err.Error())
}

func TestBuilderConfigEntryKeyDuplicated(t *testing.T) {
	var top Topology
	builder := NewBuilder(&top)

	eb, err := builder.Component("motor.Motor", "m0")
	require.NoError(t, err)
	require.NoError(t, SetConfig[uint64](eb, "k", 1))

	err = SetConfig[uint64](eb, "k", 2)
	require.Error(t, err)

	var dup *pkgerrors.ConfigEntryKeyDuplicated
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, `Config entry key duplicated: "k".`, err.Error())
}

func TestBuilderEntryBuilderSurvivesAppends(t *testing.T) {
	var top Topology
	builder := NewBuilder(&top)

	first, err := builder.Component("motor.Motor", "m0")
	require.NoError(t, err)

	// Force reallocation of the backing array.
	for i := 0; i < 32; i++ {
		_, err := builder.Component("motor.Motor", string(rune('a'+i)))
		require.NoError(t, err)
	}

	first.Dependency("late")
	assert.Equal(t, []string{"late"}, top[0].DependencyIDs)
}
