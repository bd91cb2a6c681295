package codec

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// MarshalYAML stores color as CSS text.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML accepts any color notation ParseColor understands.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	v, ok := ParseColor(node.Value)
	if !ok {
		return fmt.Errorf("line %d: unrecognized color %q", node.Line, node.Value)
	}
	*c = v
	return nil
}

// MarshalYAML stores size as CSS text.
func (s Size) MarshalYAML() (any, error) {
	if s.IsNone() {
		return "none", nil
	}
	return s.String(), nil
}

// UnmarshalYAML accepts "12px", "1.5em", "80%" or "none". Bare numbers are
// pixels.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: size must be a scalar", node.Line)
	}
	if node.Value == "none" {
		*s = Size{}
		return nil
	}
	v, ok := ParseSize(node.Value, UnitPx)
	if !ok {
		return fmt.Errorf("line %d: unrecognized size %q", node.Line, node.Value)
	}
	*s = v
	return nil
}
