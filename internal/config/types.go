// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/textr/textr/internal/textutil"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// MaxFieldWidth bounds the configurable count and number field widths.
	MaxFieldWidth FieldWidth = 32
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidFieldWidth is the sentinel error wrapped by InvalidFieldWidthError.
	ErrInvalidFieldWidth = errors.New("invalid field width")
	// ErrInvalidLineCount is the sentinel error wrapped by InvalidLineCountError.
	ErrInvalidLineCount = errors.New("invalid line count")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// FieldWidth is the width of a right-justified numeric output field.
	// Valid widths are 1 through MaxFieldWidth.
	FieldWidth int

	// InvalidFieldWidthError is returned when a FieldWidth is out of range.
	InvalidFieldWidthError struct {
		Field string
		Value FieldWidth
	}

	// LineCount is a positive number of lines.
	LineCount int

	// InvalidLineCountError is returned when a LineCount is not positive.
	InvalidLineCountError struct {
		Field string
		Value LineCount
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Shell configures the embedded shell
		Shell ShellConfig `json:"shell" mapstructure:"shell"`
		// Cat configures the cat utility
		Cat CatConfig `json:"cat" mapstructure:"cat"`
		// Head configures the head utility
		Head HeadConfig `json:"head" mapstructure:"head"`
		// Uniq configures the uniq utility
		Uniq UniqConfig `json:"uniq" mapstructure:"uniq"`
		// Wc configures the wc utility
		Wc WcConfig `json:"wc" mapstructure:"wc"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the docs rendering style
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and detailed error output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// ShellConfig configures the embedded shell.
	ShellConfig struct {
		// EnableBuiltins resolves textr utilities before host binaries
		EnableBuiltins bool `json:"enable_builtins" mapstructure:"enable_builtins"`
	}

	// CatConfig configures the cat utility.
	CatConfig struct {
		NumberWidth FieldWidth `json:"number_width" mapstructure:"number_width"`
	}

	// HeadConfig configures the head utility.
	HeadConfig struct {
		Lines LineCount `json:"lines" mapstructure:"lines"`
	}

	// UniqConfig configures the uniq utility.
	UniqConfig struct {
		CountWidth FieldWidth `json:"count_width" mapstructure:"count_width"`
	}

	// WcConfig configures the wc utility.
	WcConfig struct {
		CountWidth FieldWidth `json:"count_width" mapstructure:"count_width"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := textutil.DefaultOptions()
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Shell: ShellConfig{
			EnableBuiltins: true,
		},
		Cat:  CatConfig{NumberWidth: FieldWidth(opts.CatNumberWidth)},
		Head: HeadConfig{Lines: LineCount(opts.HeadLines)},
		Uniq: UniqConfig{CountWidth: FieldWidth(opts.UniqCountWidth)},
		Wc:   WcConfig{CountWidth: FieldWidth(opts.WcCountWidth)},
	}
}

// Options converts the utility sections into textutil.Options.
func (c *Config) Options() textutil.Options {
	return textutil.Options{
		CatNumberWidth: int(c.Cat.NumberWidth),
		HeadLines:      int(c.Head.Lines),
		UniqCountWidth: int(c.Uniq.CountWidth),
		WcCountWidth:   int(c.Wc.CountWidth),
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	widths := []struct {
		field string
		value FieldWidth
	}{
		{"cat.number_width", c.Cat.NumberWidth},
		{"uniq.count_width", c.Uniq.CountWidth},
		{"wc.count_width", c.Wc.CountWidth},
	}
	for _, w := range widths {
		if !w.value.valid() {
			errs = append(errs, &InvalidFieldWidthError{Field: w.field, Value: w.value})
		}
	}
	if c.Head.Lines <= 0 {
		errs = append(errs, &InvalidLineCountError{Field: "head.lines", Value: c.Head.Lines})
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (w FieldWidth) valid() bool { return w >= 1 && w <= MaxFieldWidth }

// Error implements the error interface for InvalidFieldWidthError.
func (e *InvalidFieldWidthError) Error() string {
	return fmt.Sprintf("%s: width %d out of range 1..%d", e.Field, e.Value, MaxFieldWidth)
}

// Unwrap returns ErrInvalidFieldWidth for errors.Is() compatibility.
func (e *InvalidFieldWidthError) Unwrap() error { return ErrInvalidFieldWidth }

// Error implements the error interface for InvalidLineCountError.
func (e *InvalidLineCountError) Error() string {
	return fmt.Sprintf("%s: line count %d must be positive", e.Field, e.Value)
}

// Unwrap returns ErrInvalidLineCount for errors.Is() compatibility.
func (e *InvalidLineCountError) Unwrap() error { return ErrInvalidLineCount }
