package policy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/mathstyle/style"
	"gopkg.in/yaml.v3"
)

// Setting keys understood by FromSettings and LoadYAML.
const (
	KeyMathStyle   = "math_style"
	KeyNormalStyle = "normal_style"
	KeyBoldStyle   = "bold_style"
	KeySansStyle   = "sans_style"
	KeyPartial     = "partial"
	KeyNabla       = "nabla"
)

// FromSettings creates a policy from flat key/value settings, as read from
// command lines or configuration files. A missing math_style defaults to
// "tex". Style specs are either a convention name or a per-alphabet list in
// the format
//
//	Greek=upright,greek=italic,Latin=upright,latin=italic
//
// which has to name all four alphabets.
func FromSettings(settings map[string]string) (Policy, error) {
	return Default().Apply(settings)
}

// Apply returns a copy of p with the given settings applied on top of it.
// Keys and values are the same as for FromSettings. If a setting is
// malformed, or a field is given twice (e.g. as "bold_style" and
// "bold_style_spec"), Apply returns p unchanged together with an error.
func (p Policy) Apply(settings map[string]string) (Policy, error) {
	q := p
	seen := make(map[string]string, len(settings))
	for key, value := range settings {
		field := strings.TrimSuffix(key, "_spec")
		if other, dup := seen[field]; dup {
			return p, errMalformed(field, fmt.Sprintf("set by both %q and %q", other, key))
		}
		seen[field] = key
		if err := q.set(key, strings.TrimSpace(value)); err != nil {
			return p, err
		}
	}
	return q, nil
}

func (p *Policy) set(key, value string) (err error) {
	switch strings.TrimSuffix(key, "_spec") {
	case KeyMathStyle:
		p.MathStyle = NamedSpec(value)
	case KeyNormalStyle:
		p.Normal, err = parseSpec(KeyNormalStyle, value)
	case KeyBoldStyle:
		p.Bold, err = parseSpec(KeyBoldStyle, value)
	case KeySansStyle:
		p.Sans, err = parseShape(KeySansStyle, value)
	case KeyPartial:
		p.Partial, err = parseShape(KeyPartial, value)
	case KeyNabla:
		p.Nabla, err = parseShape(KeyNabla, value)
	default:
		err = errMalformed(key, "unknown policy field")
	}
	return
}

func parseShape(field, value string) (style.ShapePreference, error) {
	pref, err := style.ParseShape(value)
	if err != nil {
		return style.Unset, errMalformed(field, err.Error())
	}
	return pref, nil
}

func parseSpec(field, value string) (StyleSpec, error) {
	if !strings.Contains(value, "=") {
		return NamedSpec(value), nil
	}
	entries := make(map[string]string)
	for _, item := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(item, "=")
		if !ok {
			return nil, errMalformed(field, fmt.Sprintf("expected alphabet=shape, have %q", item))
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return perAlphabetFrom(field, entries)
}

func perAlphabetFrom(field string, entries map[string]string) (PerAlphabetStyle, error) {
	var pas PerAlphabetStyle
	for k, v := range entries {
		a, err := style.ParseAlphabet(k)
		if err != nil {
			return pas, errMalformed(field, err.Error())
		}
		pref, err := parseShape(field, v)
		if err != nil {
			return pas, err
		}
		switch a {
		case style.UpperGreek:
			pas.UpperGreek = pref
		case style.LowerGreek:
			pas.LowerGreek = pref
		case style.UpperLatin:
			pas.UpperLatin = pref
		case style.LowerLatin:
			pas.LowerLatin = pref
		default:
			return pas, errMalformed(field, fmt.Sprintf("alphabet %s has no per-alphabet style", a))
		}
	}
	return pas, pas.check(field)
}

// policyFile is the YAML representation of a policy. Style specs may be
// scalars (convention names) or mappings from alphabet to shape.
type policyFile struct {
	MathStyle string    `yaml:"math_style"`
	Normal    yaml.Node `yaml:"normal_style"`
	Bold      yaml.Node `yaml:"bold_style"`
	Sans      string    `yaml:"sans_style"`
	Partial   string    `yaml:"partial"`
	Nabla     string    `yaml:"nabla"`
}

// LoadYAML reads a policy from a YAML document, e.g.
//
//	math_style: iso
//	bold_style:
//	  Greek: upright
//	  greek: italic
//	  Latin: upright
//	  latin: upright
//	sans_style: italic
//
// Unknown keys and malformed fields are errors. An empty document yields
// the default policy.
func LoadYAML(r io.Reader) (Policy, error) {
	var pf policyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Policy{}, fmt.Errorf("style policy: %w", err)
	}
	p := Default()
	if pf.MathStyle != "" {
		p.MathStyle = NamedSpec(pf.MathStyle)
	}
	var err error
	if p.Normal, err = specFromNode(KeyNormalStyle, &pf.Normal); err != nil {
		return p, err
	}
	if p.Bold, err = specFromNode(KeyBoldStyle, &pf.Bold); err != nil {
		return p, err
	}
	for _, f := range []struct {
		key   string
		value string
		pref  *style.ShapePreference
	}{
		{KeySansStyle, pf.Sans, &p.Sans},
		{KeyPartial, pf.Partial, &p.Partial},
		{KeyNabla, pf.Nabla, &p.Nabla},
	} {
		if f.value == "" {
			continue
		}
		if *f.pref, err = parseShape(f.key, f.value); err != nil {
			return p, err
		}
	}
	tracer().Debugf("loaded policy %v", p)
	return p, nil
}

func specFromNode(field string, node *yaml.Node) (StyleSpec, error) {
	switch node.Kind {
	case 0: // field absent
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" || strings.TrimSpace(node.Value) == "" {
			return nil, nil
		}
		return NamedSpec(strings.TrimSpace(node.Value)), nil
	case yaml.MappingNode:
		entries := make(map[string]string)
		if err := node.Decode(&entries); err != nil {
			return nil, errMalformed(field, err.Error())
		}
		return perAlphabetFrom(field, entries)
	}
	return nil, errMalformed(field, "expected a name or a mapping of alphabets")
}
