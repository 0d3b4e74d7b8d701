package queryfilter

import (
	"errors"
	"fmt"
	"strings"
)

const (
	defaultForeignKey     = "id"
	defaultLocalKeySuffix = "_id"
	pathSeparator         = "."
)

/***** Reference *****/

// Reference is one relationship hop on the way from the root entity to the filtered field.
//
// The join condition reads "<referenced>.<ForeignKey> = <parent>.<LocalKey>". Defaults follow the
// usual to-one convention: the table is the reference name, LocalKey is "<name>_id" and ForeignKey is "id".
// For to-many references the keys are usually the other way around, e.g. Ref("tags").ToMany().JoinedOn("id", "book_id").
type Reference struct {
	name       string
	table      string
	localKey   string
	foreignKey string
	toMany     bool
}

// Ref creates a to-one Reference with the given name.
func Ref(name string) Reference {
	return Reference{name: name}
}

// InTable sets the table the referenced entity lives in.
func (r Reference) InTable(table string) Reference {
	r.table = table

	return r
}

// JoinedOn sets the parent-side (local) and referenced-side (foreign) join columns.
func (r Reference) JoinedOn(localKey, foreignKey string) Reference {
	r.localKey = localKey
	r.foreignKey = foreignKey

	return r
}

// ToMany marks the reference as a to-many relationship. A root entity matches if one related entity
// satisfies every predicate compiled on paths through this reference.
func (r Reference) ToMany() Reference {
	r.toMany = true

	return r
}

func (r Reference) Name() string {
	return r.name
}

func (r Reference) Table() string {
	if r.table == "" {
		return r.name
	}

	return r.table
}

func (r Reference) LocalKey() string {
	if r.localKey == "" {
		return r.name + defaultLocalKeySuffix
	}

	return r.localKey
}

func (r Reference) ForeignKey() string {
	if r.foreignKey == "" {
		return defaultForeignKey
	}

	return r.foreignKey
}

func (r Reference) IsToMany() bool {
	return r.toMany
}

/***** Path *****/

// Path locates the scalar field a filter applies to: zero or more Reference hops followed by a field name.
// It has between 1 and MaxPathLength steps in total.
type Path struct {
	references []Reference
	field      string
}

// NewPath validates and creates a Path ending in field, reached via the given references in order.
func NewPath(field string, via ...Reference) (Path, error) {
	if field == "" {
		return Path{}, errors.Join(ErrInvalidArgument, ErrEmptyPath)
	}

	if len(via)+1 > MaxPathLength {
		return Path{}, errors.Join(
			ErrInvalidArgument,
			ErrPathTooLong,
			fmt.Errorf("got %d steps, at most %d are supported", len(via)+1, MaxPathLength),
		)
	}

	for i, reference := range via {
		if reference.name == "" {
			return Path{}, errors.Join(ErrInvalidArgument, ErrEmptyReferenceName, fmt.Errorf("reference %d", i+1))
		}
	}

	return Path{references: cloneValues(via), field: field}, nil
}

// MustPath is like NewPath but panics on an invalid path. Intended for package-level path declarations.
func MustPath(field string, via ...Reference) Path {
	path, err := NewPath(field, via...)
	if err != nil {
		panic(err)
	}

	return path
}

// References returns a copy of the reference hops.
func (p Path) References() []Reference {
	return cloneValues(p.references)
}

// Field returns the terminal field name.
func (p Path) Field() string {
	return p.field
}

// Len returns the number of steps including the terminal field.
func (p Path) Len() int {
	return len(p.references) + 1
}

// HasToMany reports whether any hop is a to-many reference.
func (p Path) HasToMany() bool {
	for _, reference := range p.references {
		if reference.toMany {
			return true
		}
	}

	return false
}

// String renders the path in dotted notation, e.g. "author.publisher.name".
func (p Path) String() string {
	steps := make([]string, 0, p.Len())
	for _, reference := range p.references {
		steps = append(steps, reference.name)
	}

	return strings.Join(append(steps, p.field), pathSeparator)
}
