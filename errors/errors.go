// Package errors provides the typed error surface for the wirekit container.
// Failures that the registry, the config model, the topology builder and
// loaders, and a build detect themselves are reported as the types below;
// the exception is the registry's internal type-name collision error.
// Errors returned by component constructors, Register methods, or Close
// methods pass through unchanged. Error messages are stable; tests compare
// them verbatim.
package errors

import (
	"fmt"
)

// DependencyRegisterNotFound indicates a lookup by an interface type that no
// component has ever registered under. It renders the same text as
// DependencyNotFound but remains a distinct type so callers can tell an
// unknown interface from an unknown id.
type DependencyRegisterNotFound struct {
	Type string
	ID   string
}

func (e *DependencyRegisterNotFound) Error() string {
	return fmt.Sprintf("Dependency %s{} with id=%q not found.", e.Type, e.ID)
}

// DependencyNotFound indicates the interface type is known but no dependency
// is registered under the requested id.
type DependencyNotFound struct {
	Type string
	ID   string
}

func (e *DependencyNotFound) Error() string {
	return fmt.Sprintf("Dependency %s{} with id=%q not found.", e.Type, e.ID)
}

// DependencyDuplicated indicates two components tried to register under the
// same (interface type, id) pair.
type DependencyDuplicated struct {
	Type string
	ID   string
}

func (e *DependencyDuplicated) Error() string {
	return fmt.Sprintf("Dependency %s{} already registered with id=%q.", e.Type, e.ID)
}

// FactoryNotFound indicates a topology names a component type with no
// registered factory.
type FactoryNotFound struct {
	Type string
}

func (e *FactoryNotFound) Error() string {
	return fmt.Sprintf("Factory of %s{} not registered.", e.Type)
}

// ComponentIdDuplicated indicates a topology builder reused an instance id.
type ComponentIdDuplicated struct {
	Type string
	ID   string
}

func (e *ComponentIdDuplicated) Error() string {
	return fmt.Sprintf("Component id duplicated for component %s{%q}.", e.Type, e.ID)
}

// ConfigEntryNotFound indicates a component read a config key that its
// topology entry never set.
type ConfigEntryNotFound struct {
	ComponentType string
	ComponentID   string
	Key           string
}

func (e *ConfigEntryNotFound) Error() string {
	return fmt.Sprintf("Config entry %q not found for component %s{%q}.", e.Key, e.ComponentType, e.ComponentID)
}

// ConfigEntryCastError indicates a config value was read at a type its
// stored type and value cannot be safely reinterpreted as.
type ConfigEntryCastError struct {
	Key        string
	Value      string
	SourceType string
	TargetType string
}

func (e *ConfigEntryCastError) Error() string {
	return fmt.Sprintf("Could not cast config entry %q from %s{%s} to %s.", e.Key, e.SourceType, e.Value, e.TargetType)
}

// ConfigEntryKeyDuplicated indicates a topology entry set the same config
// key twice.
type ConfigEntryKeyDuplicated struct {
	Key string
}

func (e *ConfigEntryKeyDuplicated) Error() string {
	return fmt.Sprintf("Config entry key duplicated: %q.", e.Key)
}

// SideDependencyIdEmpty indicates a component exposed a side dependency
// under an empty side id.
type SideDependencyIdEmpty struct {
	ComponentType string
	ComponentID   string
}

func (e *SideDependencyIdEmpty) Error() string {
	return "Side dependency id shall not be empty."
}

// SideDependencyIdDuplicated indicates a component exposed two side
// dependencies that resolve to the same composite id.
type SideDependencyIdDuplicated struct {
	ID string
}

func (e *SideDependencyIdDuplicated) Error() string {
	return fmt.Sprintf("Side dependency id duplicated: %q.", e.ID)
}

// NotInterface indicates a dependency was injected, registered, or queried
// at a concrete type. Dependencies are exchanged at their abstract
// interfaces only.
type NotInterface struct {
	Type string
}

func (e *NotInterface) Error() string {
	return fmt.Sprintf("Dependency type %s shall be an interface.", e.Type)
}

// InterfaceNotImplemented indicates a component declared an interface in
// its registration set that its concrete type does not implement.
type InterfaceNotImplemented struct {
	ComponentType string
	ComponentID   string
	Interface     string
}

func (e *InterfaceNotImplemented) Error() string {
	return fmt.Sprintf("Component %s{%q} does not implement %s.", e.ComponentType, e.ComponentID, e.Interface)
}

// DependencyIdsExhausted indicates a component constructor requested more
// injections than its topology entry provided dependency ids for.
type DependencyIdsExhausted struct {
	ComponentType string
	ComponentID   string
	Provided      int
}

func (e *DependencyIdsExhausted) Error() string {
	return fmt.Sprintf("Component %s{%q} constructor requires more than the %d dependency ids provided.",
		e.ComponentType, e.ComponentID, e.Provided)
}

// TopologyLoader carries a topology schema violation. The message formats
// are part of the loader's contract; see the topology package.
type TopologyLoader struct {
	Msg string
}

func (e *TopologyLoader) Error() string {
	return e.Msg
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}
