package pathtoregexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Values maps parameter names to their values: a string for a single
// parameter, a []string (or []any of strings) for a repeated one.
type Values = map[string]any

// BuildFunc renders a concrete path from parameter values. It fails with a
// *ValidationError naming the offending key when a value is missing, has the
// wrong type or does not match the parameter's custom pattern.
type BuildFunc func(values Values) (string, error)

// NewBuilder parses a pattern string and compiles its path builder.
func NewBuilder(pattern string, opts ...Option) (BuildFunc, error) {
	p, err := Parse(pattern, opts...)
	if err != nil {
		return nil, err
	}

	return p.NewBuilder(opts...)
}

// NewBuilder compiles the pattern's path builder. Custom parameter patterns
// are compiled to validators once, here; value errors are only ever raised
// per call.
func (p *ParsedPattern) NewBuilder(opts ...Option) (BuildFunc, error) {
	o := compileOptions(opts)

	b := &builder{o: o, validators: make(map[string]*regexp2.Regexp)}
	if err := b.compileValidators(p.parts); err != nil {
		return nil, err
	}

	parts := p.parts

	return func(values Values) (string, error) {
		var path strings.Builder
		if err := b.buildParts(&path, parts, values); err != nil {
			return "", err
		}

		return path.String(), nil
	}, nil
}

type builder struct {
	o          *options
	validators map[string]*regexp2.Regexp
}

func (b *builder) compileValidators(parts partList) error {
	for i := range parts {
		p := &parts[i]

		switch p.pType {
		case partParameter:
			if p.pattern == "" {
				continue
			}

			reOptions := regexp2.None
			if !b.o.sensitive {
				reOptions |= regexp2.IgnoreCase
			}

			// \A and \z bound the whole value; the engine's "$" would also
			// accept a trailing newline.
			re, err := regexp2.Compile(`\A(?:`+p.pattern+`)\z`, reOptions)
			if err != nil {
				return err
			}

			b.validators[p.name] = re

		case partGroup:
			if err := b.compileValidators(p.parts); err != nil {
				return err
			}
		}
	}

	return nil
}

func (b *builder) buildParts(path *strings.Builder, parts partList, values Values) error {
	for i := range parts {
		p := &parts[i]

		switch p.pType {
		case partText:
			switch p.modifier {
			case partModifierOptional, partModifierZeroOrMore:
				// Nothing in values can ask for optional fixed text, so it is
				// always omitted.
			default:
				path.WriteString(p.value)
			}

		case partParameter, partWildcard:
			value, ok := values[p.name]
			if !ok {
				if p.modifier == partModifierOptional {
					continue
				}

				return errExpectedString(p.name)
			}

			s, ok := value.(string)
			if !ok {
				return errExpectedString(p.name)
			}

			if err := b.appendValue(path, p, s); err != nil {
				return err
			}

		case partGroup:
			if err := b.buildGroup(path, p, values); err != nil {
				return err
			}
		}
	}

	return nil
}

func (b *builder) appendValue(path *strings.Builder, p *part, value string) error {
	encoded := b.o.encode(value)

	if re := b.validators[p.name]; re != nil {
		if ok, err := re.MatchString(encoded); err != nil || !ok {
			return errInvalidValue(p.name, encoded)
		}
	}

	path.WriteString(encoded)

	return nil
}

func (b *builder) buildGroup(path *strings.Builder, group *part, values Values) error {
	switch group.modifier {
	case partModifierNone:
		return b.buildParts(path, group.parts, values)

	case partModifierOptional:
		// The whole group is silently omitted when none of its parameters
		// has a value; once any of them has one, they all become required.
		if !groupHasValue(group, values) {
			return nil
		}

		return b.buildParts(path, group.parts, values)

	default:
		return b.buildRepeatedGroup(path, group, values)
	}
}

func (b *builder) buildRepeatedGroup(path *strings.Builder, group *part, values Values) error {
	before, prm, after := group.repeatShape()

	value, ok := values[prm.name]
	if !ok {
		if group.modifier == partModifierZeroOrMore {
			return nil
		}

		return errExpectedArray(prm.name)
	}

	elements, err := stringSlice(prm.name, value)
	if err != nil {
		return err
	}

	if len(elements) == 0 {
		if group.modifier == partModifierZeroOrMore {
			return nil
		}

		return errInvalidValue(prm.name, "")
	}

	var segment strings.Builder
	re := b.validators[prm.name]
	invalid := false

	for _, element := range elements {
		encoded := b.o.encode(element)

		if re != nil {
			if ok, err := re.MatchString(encoded); err != nil || !ok {
				invalid = true
			}
		}

		segment.WriteString(before)
		segment.WriteString(encoded)
		segment.WriteString(after)
	}

	// The error reports the fully joined value, not the first offending
	// element, matching what the compiled regexp would have refused.
	if invalid {
		return errInvalidValue(prm.name, segment.String())
	}

	path.WriteString(segment.String())

	return nil
}

func groupHasValue(group *part, values Values) bool {
	for i := range group.parts {
		p := &group.parts[i]

		switch p.pType {
		case partParameter, partWildcard:
			if _, ok := values[p.name]; ok {
				return true
			}

		case partGroup:
			if groupHasValue(p, values) {
				return true
			}
		}
	}

	return false
}

func stringSlice(name string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil

	case []any:
		elements := make([]string, len(v))
		for i, element := range v {
			s, ok := element.(string)
			if !ok {
				return nil, errExpectedElementString(name, i)
			}

			elements[i] = s
		}

		return elements, nil

	default:
		return nil, errExpectedArray(name)
	}
}
