package geo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/bitmark-inc/ncov-charts/consts"
)

var (
	ErrEmptyName       = fmt.Errorf("empty name")
	ErrNotInTable      = fmt.Errorf("name not in mapping table")
	ErrSuffixNotMatch  = fmt.Errorf("name suffix not matched")
	ErrNoKnownName     = fmt.Errorf("no known name matched")
	ErrNoResolverFound = fmt.Errorf("no name resolver configured")
)

const (
	cityNameSuffix = "市"
	districtSuffix = "区"
)

// NameResolver - interface for resolving a scraped name into a map region name
type NameResolver interface {
	Resolve(name string) (string, error)
}

type MultipleResolverErrors struct {
	name   string
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return fmt.Sprintf("resolve %q: %s", e.name, strings.Join(errorStrings, "; "))
}

// Errors - failure of each resolver in order
func (e *MultipleResolverErrors) Errors() []error {
	return e.errors
}

func NewMultipleResolverErrors(name string, errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		name:   name,
		errors: errors,
	}
}

// Normalize - NFKC fold and trim, so full-width input matches the tables
func Normalize(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}

// TableNameResolver - exact lookup in a static table
type TableNameResolver struct {
	lookup func(string) (string, bool)
}

func NewTableNameResolver() *TableNameResolver {
	return &TableNameResolver{
		lookup: consts.CityMapName,
	}
}

func (r *TableNameResolver) Resolve(name string) (string, error) {
	if n, ok := r.lookup(name); ok {
		return n, nil
	}
	return "", ErrNotInTable
}

// SuffixNameResolver - names with one of the suffixes are already region names
type SuffixNameResolver struct {
	suffixes []string
}

func NewSuffixNameResolver(suffixes ...string) *SuffixNameResolver {
	return &SuffixNameResolver{
		suffixes: suffixes,
	}
}

func (r *SuffixNameResolver) Resolve(name string) (string, error) {
	for _, s := range r.suffixes {
		if strings.HasSuffix(name, s) {
			return name, nil
		}
	}
	return "", ErrSuffixNotMatch
}

// KnownNameResolver - match against a list of known region names by the
// characters they share. The first known name, in list order, containing every
// distinct character of the input wins.
type KnownNameResolver struct {
	names []string
}

func NewKnownNameResolver(names []string) *KnownNameResolver {
	return &KnownNameResolver{
		names: names,
	}
}

func (r *KnownNameResolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	for _, known := range r.names {
		if !sharesAllRunes(known, name) {
			continue
		}
		if known == name {
			return name + cityNameSuffix, nil
		}
		return known, nil
	}

	return "", ErrNoKnownName
}

// sharesAllRunes - the number of distinct runes shared by known and name
// equals the rune length of name
func sharesAllRunes(known, name string) bool {
	set := make(map[rune]struct{}, len(known))
	for _, r := range known {
		set[r] = struct{}{}
	}

	shared := make(map[rune]struct{})
	for _, r := range name {
		if _, ok := set[r]; ok {
			shared[r] = struct{}{}
		}
	}

	return len(shared) == utf8.RuneCountInString(name)
}

// MultipleNameResolver - try resolvers in order, first success wins
type MultipleNameResolver struct {
	resolvers []NameResolver
}

func NewMultipleNameResolver(resolvers ...NameResolver) *MultipleNameResolver {
	return &MultipleNameResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleNameResolver) Resolve(name string) (string, error) {
	name = Normalize(name)
	if name == "" {
		return "", ErrEmptyName
	}

	if len(r.resolvers) == 0 {
		return "", ErrNoResolverFound
	}

	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(name)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return "", NewMultipleResolverErrors(name, errors)
}

// NewCityNameResolver - table lookup, then district suffix, then known names
func NewCityNameResolver(knownNames []string) *MultipleNameResolver {
	return NewMultipleNameResolver(
		NewTableNameResolver(),
		NewSuffixNameResolver(districtSuffix),
		NewKnownNameResolver(knownNames),
	)
}

// ReadKnownNames - one name per line, blank lines ignored, order kept
func ReadKnownNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n := Normalize(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return names, nil
}

// LoadKnownNames - read known names from a file
func LoadKnownNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return ReadKnownNames(f)
}
