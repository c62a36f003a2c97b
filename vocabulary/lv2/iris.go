package lv2

// Namespace is the base IRI of the LV2 core vocabulary.
const Namespace = "http://lv2plug.in/ns/lv2core#"

// Sibling namespaces bound alongside lv2 by the plugin tooling.
const (
	// PresetNamespace is the LV2 presets extension.
	PresetNamespace = "http://lv2plug.in/ns/ext/presets#"

	// PluginNamespace is the base IRI for the plugin instances.
	PluginNamespace = "http://pgiblock.net/plugins/"

	// ProjectNamespace is the base IRI for project-specific terms.
	ProjectNamespace = "http://pgiblock.net/ns/"
)

// Class IRIs for port types.
const (
	// ClassInputPort is a port the host writes and the plugin reads.
	ClassInputPort = Namespace + "InputPort"

	// ClassOutputPort is a port the plugin writes and the host reads.
	ClassOutputPort = Namespace + "OutputPort"
)

// Property IRIs for port attributes.
const (
	PropSymbol = Namespace + "symbol"
	PropIndex  = Namespace + "index"
	PropName   = Namespace + "name"
)

// Prefixes returns the prefix bindings used when loading plugin descriptions.
func Prefixes() map[string]string {
	return map[string]string{
		"lv2":    Namespace,
		"pset":   PresetNamespace,
		"pgplug": PluginNamespace,
		"pgns":   ProjectNamespace,
	}
}
