package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const configHeader = `# wheel configuration
# Durations use Go syntax (500ms, 4s). Colours are hex.
`

// Marshal renders cfg as YAML with a short header comment.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(cfg)); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default config to path.
func WriteDefault(path string) error {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// toDocument builds a yaml.Node so durations serialize as "4s" rather than
// nanosecond integers and colour lists stay on one line.
func toDocument(cfg *Config) *yaml.Node {
	doc := mapping()

	addScalar(doc, "version", fmt.Sprint(cfg.Version), "!!int")

	w := mapping()
	addScalar(w, "sectors", fmt.Sprint(cfg.Wheel.Sectors), "!!int")
	addFlowSeq(w, "colors", cfg.Wheel.Colors)
	addFlowSeq(w, "highlight_colors", cfg.Wheel.HighlightColors)
	addScalar(w, "radius", fmt.Sprint(cfg.Wheel.Radius), "!!int")
	addMap(doc, "wheel", w)

	s := mapping()
	addScalar(s, "min_velocity", fmt.Sprint(cfg.Spin.MinVelocity), "!!float")
	addScalar(s, "velocity_range", fmt.Sprint(cfg.Spin.VelocityRange), "!!float")
	addScalar(s, "decay", fmt.Sprint(cfg.Spin.Decay), "!!float")
	addScalar(s, "epsilon", fmt.Sprint(cfg.Spin.Epsilon), "!!float")
	addScalar(s, "step_scale", fmt.Sprint(cfg.Spin.StepScale), "!!float")
	addScalar(s, "stop_grace", cfg.Spin.StopGrace.String(), "!!str")
	addScalar(s, "frame_interval", cfg.Spin.FrameInterval.String(), "!!str")
	addMap(doc, "spin", s)

	h := mapping()
	addScalar(h, "interval", cfg.Highlight.Interval.String(), "!!str")
	addScalar(h, "toggles", fmt.Sprint(cfg.Highlight.Toggles), "!!int")
	addMap(doc, "highlight", h)

	c := mapping()
	for _, b := range []struct {
		name string
		cfg  ButtonConfig
	}{
		{"start", cfg.Controls.Start},
		{"stop", cfg.Controls.Stop},
		{"next", cfg.Controls.Next},
	} {
		bm := mapping()
		addScalar(bm, "label", b.cfg.Label, "!!str")
		addScalar(bm, "foreground", b.cfg.Foreground, "!!str")
		addScalar(bm, "background", b.cfg.Background, "!!str")
		addScalar(bm, "hover", b.cfg.Hover, "!!str")
		addMap(c, b.name, bm)
	}
	addScalar(c, "result_prefix", cfg.Controls.ResultPrefix, "!!str")
	addMap(doc, "controls", c)

	o := mapping()
	addScalar(o, "color", cfg.Output.Color, "!!str")
	addMap(doc, "output", o)

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}}
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func addScalar(m *yaml.Node, name, value, tag string) {
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	if tag == "!!str" {
		// keep "#..." colours and "Result: " from being read as comments or trimmed
		v.Style = yaml.DoubleQuotedStyle
	}
	m.Content = append(m.Content, key(name), v)
}

func addFlowSeq(m *yaml.Node, name string, values []string) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range values {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle,
		})
	}
	m.Content = append(m.Content, key(name), seq)
}

func addMap(m *yaml.Node, name string, child *yaml.Node) {
	m.Content = append(m.Content, key(name), child)
}
