package topology

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/c360/wirekit/errors"
)

// LoadYAMLFile loads a topology from a YAML file. The schema is the same as
// the JSON surface, including the single-key {"<intType>": <number>} form
// for explicitly typed integrals; only the two document-level error messages
// name yaml instead of json.
func LoadYAMLFile(path string, top *Topology) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &pkgerrors.TopologyLoader{Msg: fmt.Sprintf("Topology file not accessible. Path: %q.", path)}
	}
	return LoadYAML(data, top)
}

// LoadYAML loads a topology from YAML data.
func LoadYAML(data []byte, top *Topology) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return syntaxError(formatYAML, err.Error())
	}
	return load(yamlValue(&root), formatYAML, top)
}

// yamlValue converts a YAML node tree to the decoded-document shapes the
// shared loader walks: []any, map[string]any, bool, string, and json.Number
// for anything numeric. Integer literals are normalized to canonical decimal
// so range errors render the same value a JSON topology would.
func yamlValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return yamlValue(n.Content[0])
	case yaml.SequenceNode:
		seq := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			seq = append(seq, yamlValue(child))
		}
		return seq
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = yamlValue(n.Content[i+1])
		}
		return m
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return nil
	}
}

func yamlScalar(n *yaml.Node) any {
	switch n.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return n.Value
		}
		return b
	case "!!int":
		return json.Number(canonicalInt(n.Value))
	case "!!float":
		literal := n.Value
		if !isFloat(literal) {
			literal += ".0"
		}
		return json.Number(literal)
	case "!!null":
		return nil
	default:
		return n.Value
	}
}

// canonicalInt renders a YAML integer literal (possibly hex or octal) in
// decimal. Literals too large to parse pass through untouched.
func canonicalInt(literal string) string {
	if strings.HasPrefix(literal, "-") {
		if i, err := strconv.ParseInt(literal, 0, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return literal
	}
	if u, err := strconv.ParseUint(literal, 0, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	return literal
}
