package ruleset

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Call is a single builder call: a rule name (any casing, optional chaining
// prefix) and its positional arguments.
type Call struct {
	Name string
	Args []any
}

// Field is a named, ordered list of calls.
type Field struct {
	Name  string
	Calls []Call
}

// Document is a parsed rule set. Fields keep the order they were written in.
type Document struct {
	Extensions []string
	Fields     []Field
}

// Parse reads a rule set document:
//
//	extensions: [slug]
//	fields:
//	  email:
//	    - required
//	    - email: 255
//	    - unique: [users, email]
//	    - ignore: [42]
//	  legacy: "required|string"
//
// A call is either a bare name or a single-key mapping whose value is a list
// of arguments or a single argument. A field given as a string is kept as a
// raw, pre-rendered rule.
func Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	doc := &Document{}
	if root.Kind == 0 {
		return doc, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidDocument)
	}

	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "extensions":
			if err := value.Decode(&doc.Extensions); err != nil {
				return nil, fmt.Errorf("%w: extensions: %w", ErrInvalidDocument, err)
			}
			for j, ext := range doc.Extensions {
				doc.Extensions[j] = norm.NFC.String(ext)
			}
		case "fields":
			fields, err := parseFields(value)
			if err != nil {
				return nil, err
			}
			doc.Fields = fields
		default:
			return nil, fmt.Errorf("%w: unknown key %q at line %d", ErrInvalidDocument, key.Value, key.Line)
		}
	}
	return doc, nil
}

func parseFields(node *yaml.Node) ([]Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: fields must be a mapping", ErrInvalidDocument)
	}

	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := norm.NFC.String(node.Content[i].Value)
		calls, err := parseCalls(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Calls: calls})
	}
	return fields, nil
}

func parseCalls(node *yaml.Node) ([]Call, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return []Call{{Name: "raw", Args: []any{node.Value}}}, nil
	case yaml.SequenceNode:
	default:
		return nil, fmt.Errorf("%w: line %d: rules must be a list or a string", ErrInvalidDocument, node.Line)
	}

	calls := make([]Call, 0, len(node.Content))
	for _, item := range node.Content {
		call, err := parseCall(item)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func parseCall(node *yaml.Node) (Call, error) {
	switch {
	case node.Kind == yaml.ScalarNode && node.Value != "":
		return Call{Name: norm.NFC.String(node.Value)}, nil
	case node.Kind == yaml.MappingNode && len(node.Content) == 2:
		args, err := parseArgs(node.Content[1])
		if err != nil {
			return Call{}, err
		}
		return Call{Name: norm.NFC.String(node.Content[0].Value), Args: args}, nil
	}
	return Call{}, fmt.Errorf("%w: line %d: a call is a name or a single-key mapping", ErrInvalidDocument, node.Line)
}

func parseArgs(node *yaml.Node) ([]any, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind == yaml.SequenceNode {
		var args []any
		if err := node.Decode(&args); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidDocument, node.Line, err)
		}
		return args, nil
	}
	var arg any
	if err := node.Decode(&arg); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidDocument, node.Line, err)
	}
	return []any{arg}, nil
}
