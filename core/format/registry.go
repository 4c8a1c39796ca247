// File: registry.go
// Title: Type-Based Argument Formatter Registry
// Description: Maps argument types to formatting functions. Lookup order is the
//              exact type, then interface formatters, then kind formatters and
//              finally fmt's %v. Resolved formatters are cached per type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with built-in formatters

package format

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDepth bounds recursion into nested containers and pointers
const maxDepth = 8

// Formatter renders a single argument
type Formatter func(s *State, v any) string

// State carries the locale of the pattern being rendered
type State struct {
	Tag     language.Tag
	Printer *message.Printer

	registry *Registry
	depth    int
}

// NewState returns a rendering state for tag using r (nil means Default)
func NewState(tag language.Tag, r *Registry) *State {
	if r == nil {
		r = Default()
	}
	return &State{Tag: tag, Printer: message.NewPrinter(tag), registry: r}
}

// Format renders v with the state's registry. Formatters use it for nested
// values such as slice elements.
func (s *State) Format(v any) string {
	if s.depth >= maxDepth {
		return "..."
	}
	s.depth++
	defer func() { s.depth-- }()
	return s.registry.format(s, v)
}

// Text is rendered verbatim, without quoting
type Text string

// Char is a rune rendered as a quoted character instead of a number
type Char rune

type ifaceEntry struct {
	typ     reflect.Type
	fn      Formatter
	builtin bool
}

// Registry holds argument formatters. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	exact  map[reflect.Type]Formatter
	ifaces []ifaceEntry
	kinds  map[reflect.Kind]Formatter
	cache  map[reflect.Type]Formatter
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{
		exact: make(map[reflect.Type]Formatter),
		kinds: make(map[reflect.Kind]Formatter),
		cache: make(map[reflect.Type]Formatter),
	}
	registerBuiltins(r)
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry with the built-in formatters
func Default() *Registry {
	defaultRegistryOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Register installs fn for values of type T. If T is an interface type the
// formatter is consulted for every type implementing it.
func Register[T any](r *Registry, fn func(s *State, v T) string) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	wrapped := func(s *State, v any) string { return fn(s, v.(T)) }
	if typ.Kind() == reflect.Interface {
		r.RegisterInterface(typ, wrapped)
		return
	}
	r.RegisterType(typ, wrapped)
}

// RegisterType installs fn for the exact type typ
func (r *Registry) RegisterType(typ reflect.Type, fn Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact[typ] = fn
	r.cache = make(map[reflect.Type]Formatter)
}

// RegisterInterface installs fn for every type implementing iface. Custom
// interface formatters are consulted before the built-in ones, in
// registration order.
func (r *Registry) RegisterInterface(iface reflect.Type, fn Formatter) {
	if iface.Kind() != reflect.Interface {
		panic("format: RegisterInterface requires an interface type, got " + iface.String())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertInterface(ifaceEntry{typ: iface, fn: fn})
}

func (r *Registry) insertInterface(e ifaceEntry) {
	if e.builtin {
		r.ifaces = append(r.ifaces, e)
	} else {
		i := sort.Search(len(r.ifaces), func(i int) bool { return r.ifaces[i].builtin })
		r.ifaces = append(r.ifaces, ifaceEntry{})
		copy(r.ifaces[i+1:], r.ifaces[i:])
		r.ifaces[i] = e
	}
	r.cache = make(map[reflect.Type]Formatter)
}

// RegisterKind installs fn as the fallback for every type of kind k
func (r *Registry) RegisterKind(k reflect.Kind, fn Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k] = fn
	r.cache = make(map[reflect.Type]Formatter)
}

// Clone returns an independent copy of the registry
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		exact:  make(map[reflect.Type]Formatter, len(r.exact)),
		ifaces: append([]ifaceEntry(nil), r.ifaces...),
		kinds:  make(map[reflect.Kind]Formatter, len(r.kinds)),
		cache:  make(map[reflect.Type]Formatter),
	}
	for k, v := range r.exact {
		c.exact[k] = v
	}
	for k, v := range r.kinds {
		c.kinds[k] = v
	}
	return c
}

// Lookup returns the formatter used for typ
func (r *Registry) Lookup(typ reflect.Type) Formatter {
	r.mu.RLock()
	fn, ok := r.cache[typ]
	r.mu.RUnlock()
	if ok {
		return fn
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fn = r.resolve(typ)
	r.cache[typ] = fn
	return fn
}

func (r *Registry) resolve(typ reflect.Type) Formatter {
	if fn, ok := r.exact[typ]; ok {
		return fn
	}
	for _, e := range r.ifaces {
		if typ.Implements(e.typ) {
			return e.fn
		}
	}
	if fn, ok := r.kinds[typ.Kind()]; ok {
		return fn
	}
	return formatDefault
}

// Sprint renders a single value for tag
func (r *Registry) Sprint(tag language.Tag, v any) string {
	return NewState(tag, r).Format(v)
}

func (r *Registry) format(s *State, v any) string {
	if v == nil {
		return "nil"
	}
	return r.Lookup(reflect.TypeOf(v))(s, v)
}

func formatDefault(_ *State, v any) string {
	return fmt.Sprintf("%v", v)
}

func registerBuiltins(r *Registry) {
	r.exact[reflect.TypeOf(Text(""))] = func(_ *State, v any) string { return string(v.(Text)) }
	r.exact[reflect.TypeOf(Char(0))] = func(_ *State, v any) string { return strconv.QuoteRune(rune(v.(Char))) }
	r.exact[reflect.TypeOf(time.Time{})] = func(_ *State, v any) string { return v.(time.Time).Format(time.RFC3339) }
	r.exact[reflect.TypeOf(time.Duration(0))] = func(_ *State, v any) string { return v.(time.Duration).String() }
	r.exact[reflect.TypeOf(language.Tag{})] = func(_ *State, v any) string { return v.(language.Tag).String() }
	r.exact[reflect.TypeOf(decimal.Decimal{})] = formatDecimal

	r.insertInterface(ifaceEntry{typ: reflect.TypeOf((*reflect.Type)(nil)).Elem(), fn: formatType, builtin: true})
	r.insertInterface(ifaceEntry{typ: reflect.TypeOf((*error)(nil)).Elem(), fn: formatError, builtin: true})
	r.insertInterface(ifaceEntry{typ: reflect.TypeOf((*fmt.Stringer)(nil)).Elem(), fn: formatStringer, builtin: true})

	r.kinds[reflect.String] = func(_ *State, v any) string { return strconv.Quote(reflect.ValueOf(v).String()) }
	r.kinds[reflect.Bool] = func(_ *State, v any) string { return strconv.FormatBool(reflect.ValueOf(v).Bool()) }
	for _, k := range []reflect.Kind{
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
	} {
		r.kinds[k] = formatNumber
	}
	r.kinds[reflect.Slice] = formatList
	r.kinds[reflect.Array] = formatList
	r.kinds[reflect.Map] = formatMap
	r.kinds[reflect.Pointer] = formatPointer
}

func formatNumber(s *State, v any) string {
	n, _ := numericValue(v)
	return s.Printer.Sprint(number.Decimal(n))
}

func formatDecimal(s *State, v any) string {
	d := v.(decimal.Decimal)
	scale := 0
	if exp := d.Exponent(); exp < 0 {
		scale = int(-exp)
	}
	return s.Printer.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(scale), number.MaxFractionDigits(scale)))
}

func formatType(_ *State, v any) string {
	return v.(reflect.Type).String()
}

func formatError(_ *State, v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil"
	}
	return v.(error).Error()
}

func formatStringer(_ *State, v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil"
	}
	return v.(fmt.Stringer).String()
}

func formatList(s *State, v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return "nil"
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = s.Format(rv.Index(i).Interface())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMap(s *State, v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return "nil"
	}
	type pair struct{ k, v string }
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			k: s.Format(iter.Key().Interface()),
			v: s.Format(iter.Value().Interface()),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].k < pairs[j].k })

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.k + ": " + p.v
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatPointer(s *State, v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return "nil"
	}
	return s.Format(rv.Elem().Interface())
}
