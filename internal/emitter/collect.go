package emitter

import (
	"fmt"

	"teeny/internal/ast"
)

type EmitErrorKind int

const (
	DanglingLabel EmitErrorKind = iota
	DuplicateLabel
	ReservedName
)

// EmitError is raised before any output when goto targets and label
// declarations do not pair up, or a name cannot be used in C.
type EmitError struct {
	Kind EmitErrorKind
	Name string
}

func (e *EmitError) Error() string {
	switch e.Kind {
	case DuplicateLabel:
		return fmt.Sprintf("emit error: label '%s' is declared more than once", e.Name)
	case ReservedName:
		return fmt.Sprintf("emit error: '%s' is reserved in C and cannot be used as a name", e.Name)
	default:
		return fmt.Sprintf("emit error: goto targets undeclared label '%s'", e.Name)
	}
}

// Symbols is everything the lowering pass needs to know up front.
type Symbols struct {
	// Variables holds let/input targets in first-appearance order, followed
	// by identifiers that are only ever read.
	Variables []string
	// Unassigned is the read-only tail of Variables: identifiers that no
	// let or input ever writes. They are declared and read as 0.
	Unassigned []string
	Labels     []string
	Gotos      []string
}

// HasLabel reports whether name is declared by a label statement.
func (s *Symbols) HasLabel(name string) bool {
	for _, label := range s.Labels {
		if label == name {
			return true
		}
	}
	return false
}

// Collect gathers variables, labels and goto targets from program. The
// returned Symbols are always usable; the error reports the first label
// that is declared twice, else the first name reserved in C, else the first
// goto whose label is missing.
func Collect(program *ast.Program) (*Symbols, error) {
	symbols := &Symbols{}
	if program == nil {
		return symbols, nil
	}

	assigned := make(map[string]bool)
	read := make(map[string]bool)
	var readOnly []string
	declared := make(map[string]bool)
	var duplicate, reserved *EmitError
	reserve := func(name string, isReserved func(string) bool) {
		if reserved == nil && isReserved(name) {
			reserved = &EmitError{Kind: ReservedName, Name: name}
		}
	}

	ast.Inspect(program, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.Let:
			reserve(v.Ident, IsReservedVariable)
			if !assigned[v.Ident] {
				assigned[v.Ident] = true
				symbols.Variables = append(symbols.Variables, v.Ident)
			}
		case *ast.Input:
			reserve(v.Ident, IsReservedVariable)
			if !assigned[v.Ident] {
				assigned[v.Ident] = true
				symbols.Variables = append(symbols.Variables, v.Ident)
			}
		case *ast.Primary:
			if v.Kind == ast.IdentPrimary && !read[v.Ident] {
				reserve(v.Ident, IsReservedVariable)
				read[v.Ident] = true
				readOnly = append(readOnly, v.Ident)
			}
		case *ast.Label:
			reserve(v.Name, IsReservedLabel)
			if declared[v.Name] {
				if duplicate == nil {
					duplicate = &EmitError{Kind: DuplicateLabel, Name: v.Name}
				}
				return true
			}
			declared[v.Name] = true
			symbols.Labels = append(symbols.Labels, v.Name)
		case *ast.Goto:
			symbols.Gotos = append(symbols.Gotos, v.Name)
		}
		return true
	})

	for _, name := range readOnly {
		if !assigned[name] {
			symbols.Variables = append(symbols.Variables, name)
			symbols.Unassigned = append(symbols.Unassigned, name)
		}
	}

	if duplicate != nil {
		return symbols, duplicate
	}
	if reserved != nil {
		return symbols, reserved
	}
	for _, target := range symbols.Gotos {
		if !declared[target] {
			return symbols, &EmitError{Kind: DanglingLabel, Name: target}
		}
	}
	return symbols, nil
}
