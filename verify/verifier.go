// File: verifier.go
// Title: Verifier Configuration and Entry Points
// Description: A Verifier bundles everything a verification chain needs: the
//              message source, the locale, the argument formatters, a logger
//              and the failure mode. Verifiers are immutable after New and may
//              be shared between goroutines. The package level functions use
//              the Default verifier.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package verify

import (
	"io/fs"
	"reflect"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/i18n"
	"github.com/msto63/verifier/core/log"
)

// DefaultLocale is the locale of verifiers created without WithLocale
var DefaultLocale = language.English

// Verifier creates verification chains
type Verifier struct {
	source         MessageSource
	locale         language.Tag
	registry       *format.Registry
	logger         *log.Logger
	defaultName    string
	panicOnFailure bool
	clock          func() time.Time

	manager *i18n.Manager
	owned   bool
}

// settings collects options before the verifier is assembled
type settings struct {
	source         MessageSource
	locale         language.Tag
	registry       *format.Registry
	logger         *log.Logger
	defaultName    string
	panicOnFailure bool
	clock          func() time.Time
	manager        *i18n.Manager
	localesDir     string
	sources        []fs.FS
	noFallback     bool
	watch          bool
}

// Option configures a Verifier
type Option func(*settings)

// WithMessageSource replaces the bundle based message source
func WithMessageSource(source MessageSource) Option {
	return func(s *settings) {
		s.source = source
	}
}

// WithLocale sets the locale messages are rendered in
func WithLocale(tag language.Tag) Option {
	return func(s *settings) {
		s.locale = tag
	}
}

// WithFormatters sets the argument formatter registry
func WithFormatters(registry *format.Registry) Option {
	return func(s *settings) {
		s.registry = registry
	}
}

// WithLogger sets the logger failures are reported to at debug level
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithDefaultName sets the name used for values verified without one
func WithDefaultName(name string) Option {
	return func(s *settings) {
		s.defaultName = name
	}
}

// WithPanicOnFailure makes failing checks panic with their error
func WithPanicOnFailure(enabled bool) Option {
	return func(s *settings) {
		s.panicOnFailure = enabled
	}
}

// WithClock sets the clock used by Past and Future
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithI18n renders messages from an existing manager. The manager is not
// closed by the verifier.
func WithI18n(m *i18n.Manager) Option {
	return func(s *settings) {
		s.manager = m
	}
}

// WithLocalesDir loads bundles from dir on top of the embedded ones
func WithLocalesDir(dir string) Option {
	return func(s *settings) {
		s.localesDir = dir
	}
}

// WithSources adds bundle file systems on top of the embedded ones
func WithSources(sources ...fs.FS) Option {
	return func(s *settings) {
		s.sources = append(s.sources, sources...)
	}
}

// WithFallback controls the fallback to English for missing messages
func WithFallback(enabled bool) Option {
	return func(s *settings) {
		s.noFallback = !enabled
	}
}

// WithWatch reloads the locales directory when its files change
func WithWatch(enabled bool) Option {
	return func(s *settings) {
		s.watch = enabled
	}
}

// New creates a verifier
func New(opts ...Option) (*Verifier, error) {
	s := settings{locale: DefaultLocale, clock: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	if s.locale == language.Und {
		return nil, mdwerror.New("locale cannot be undetermined").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("verify.New")
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = log.GetDefault()
	}
	if s.registry == nil {
		s.registry = format.Default()
	}

	vf := &Verifier{
		locale:         s.locale,
		registry:       s.registry,
		logger:         s.logger.WithName("verify"),
		defaultName:    s.defaultName,
		panicOnFailure: s.panicOnFailure,
		clock:          s.clock,
		source:         s.source,
	}

	if vf.source == nil {
		m := s.manager
		if m == nil {
			sources := append(append([]fs.FS{}, s.sources...), Messages())
			var err error
			m, err = i18n.New(i18n.Options{
				DefaultLocale: DefaultLocale.String(),
				LocalesDir:    s.localesDir,
				Sources:       sources,
				Watch:         s.watch,
				NoFallback:    s.noFallback,
				Registry:      s.registry,
				Logger:        s.logger,
			})
			if err != nil {
				return nil, mdwerror.Wrap(err, "failed to load message bundles").WithOperation("verify.New")
			}
			vf.owned = true
		}
		vf.manager = m
		vf.source = NewBundleSource(m, s.registry)
	}

	return vf, nil
}

// MustNew is like New but panics on error
func MustNew(opts ...Option) *Verifier {
	vf, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return vf
}

var (
	defaultVerifier   *Verifier
	defaultVerifierMu sync.RWMutex
	defaultOnce       sync.Once
)

// Default returns the package default verifier
func Default() *Verifier {
	defaultOnce.Do(func() {
		defaultVerifierMu.Lock()
		defer defaultVerifierMu.Unlock()
		if defaultVerifier == nil {
			defaultVerifier = MustNew()
		}
	})
	defaultVerifierMu.RLock()
	defer defaultVerifierMu.RUnlock()
	return defaultVerifier
}

// SetDefault replaces the package default verifier. A nil vf restores the
// built-in default.
func SetDefault(vf *Verifier) {
	if vf == nil {
		vf = MustNew()
	}
	defaultOnce.Do(func() {})
	defaultVerifierMu.Lock()
	defer defaultVerifierMu.Unlock()
	defaultVerifier = vf
}

// In returns a copy of vf rendering messages in tag. The copy shares the
// message bundles of vf.
func (vf *Verifier) In(tag language.Tag) *Verifier {
	cp := *vf
	cp.locale = tag
	cp.owned = false
	return &cp
}

// Locale returns the locale messages are rendered in
func (vf *Verifier) Locale() language.Tag {
	return vf.locale
}

// Source returns the message source
func (vf *Verifier) Source() MessageSource {
	return vf.source
}

// Registry returns the argument formatter registry
func (vf *Verifier) Registry() *format.Registry {
	return vf.registry
}

// Manager returns the i18n manager behind the default message source, nil
// when a custom source is used
func (vf *Verifier) Manager() *i18n.Manager {
	return vf.manager
}

// Now returns the current time of the verifier clock
func (vf *Verifier) Now() time.Time {
	return vf.clock()
}

// Close releases the bundles loaded by New. Copies made with In and
// verifiers on a caller supplied manager do nothing.
func (vf *Verifier) Close() error {
	if vf.owned && vf.manager != nil {
		return vf.manager.Close()
	}
	return nil
}

// Object starts the verification of an arbitrary value
func (vf *Verifier) Object(value any, name ...string) *ObjectVerifier {
	return newObject(NewVerification(vf, value, name...))
}

// String starts the verification of a string
func (vf *Verifier) String(value string, name ...string) *StringVerifier {
	return newString(NewVerification(vf, value, name...))
}

// Bool starts the verification of a bool
func (vf *Verifier) Bool(value bool, name ...string) *BoolVerifier {
	return newBool(NewVerification(vf, value, name...))
}

// Rune starts the verification of a single character
func (vf *Verifier) Rune(value rune, name ...string) *RuneVerifier {
	return newRune(NewVerification(vf, value, name...))
}

// Time starts the verification of an instant
func (vf *Verifier) Time(value time.Time, name ...string) *TimeVerifier {
	return newTime(NewVerification(vf, value, name...))
}

// Duration starts the verification of a duration
func (vf *Verifier) Duration(value time.Duration, name ...string) *IntVerifier[time.Duration] {
	return IntWith(vf, value, name...)
}

// Error starts the verification of an error
func (vf *Verifier) Error(value error, name ...string) *ErrorVerifier {
	return newError(NewVerification(vf, value, name...))
}

// LocaleOf starts the verification of a language tag
func (vf *Verifier) LocaleOf(value language.Tag, name ...string) *LocaleVerifier {
	return newLocale(NewVerification(vf, value, name...))
}

// Type starts the verification of a type
func (vf *Verifier) Type(value reflect.Type, name ...string) *TypeVerifier {
	return newType(NewVerification(vf, value, name...))
}

// Decimal starts the verification of a decimal number
func (vf *Verifier) Decimal(value decimal.Decimal, name ...string) *DecimalVerifier {
	return newDecimal(NewVerification(vf, value, name...))
}

// Object starts the verification of an arbitrary value on the default verifier
func Object(value any, name ...string) *ObjectVerifier {
	return Default().Object(value, name...)
}

// String starts the verification of a string on the default verifier
func String(value string, name ...string) *StringVerifier {
	return Default().String(value, name...)
}

// Bool starts the verification of a bool on the default verifier
func Bool(value bool, name ...string) *BoolVerifier {
	return Default().Bool(value, name...)
}

// Rune starts the verification of a character on the default verifier
func Rune(value rune, name ...string) *RuneVerifier {
	return Default().Rune(value, name...)
}

// Time starts the verification of an instant on the default verifier
func Time(value time.Time, name ...string) *TimeVerifier {
	return Default().Time(value, name...)
}

// Duration starts the verification of a duration on the default verifier
func Duration(value time.Duration, name ...string) *IntVerifier[time.Duration] {
	return Default().Duration(value, name...)
}

// Error starts the verification of an error on the default verifier
func Error(value error, name ...string) *ErrorVerifier {
	return Default().Error(value, name...)
}

// Locale starts the verification of a language tag on the default verifier
func Locale(value language.Tag, name ...string) *LocaleVerifier {
	return Default().LocaleOf(value, name...)
}

// Type starts the verification of a type on the default verifier
func Type(value reflect.Type, name ...string) *TypeVerifier {
	return Default().Type(value, name...)
}

// Decimal starts the verification of a decimal on the default verifier
func Decimal(value decimal.Decimal, name ...string) *DecimalVerifier {
	return Default().Decimal(value, name...)
}

// Int starts the verification of an integer on the default verifier
func Int[T constraints.Integer](value T, name ...string) *IntVerifier[T] {
	return IntWith(Default(), value, name...)
}

// IntWith starts the verification of an integer on vf
func IntWith[T constraints.Integer](vf *Verifier, value T, name ...string) *IntVerifier[T] {
	return newInt(NewVerification(vf, value, name...))
}

// Float starts the verification of a floating point number on the default
// verifier
func Float[T constraints.Float](value T, name ...string) *FloatVerifier[T] {
	return FloatWith(Default(), value, name...)
}

// FloatWith starts the verification of a floating point number on vf
func FloatWith[T constraints.Float](vf *Verifier, value T, name ...string) *FloatVerifier[T] {
	return newFloat(NewVerification(vf, value, name...))
}

// Slice starts the verification of a slice on the default verifier
func Slice[E any](value []E, name ...string) *SliceVerifier[E] {
	return SliceWith(Default(), value, name...)
}

// SliceWith starts the verification of a slice on vf
func SliceWith[E any](vf *Verifier, value []E, name ...string) *SliceVerifier[E] {
	return newSlice(NewVerification(vf, value, name...))
}

// Map starts the verification of a map on the default verifier
func Map[K comparable, V any](value map[K]V, name ...string) *MapVerifier[K, V] {
	return MapWith(Default(), value, name...)
}

// MapWith starts the verification of a map on vf
func MapWith[K comparable, V any](vf *Verifier, value map[K]V, name ...string) *MapVerifier[K, V] {
	return newMap(NewVerification(vf, value, name...))
}
