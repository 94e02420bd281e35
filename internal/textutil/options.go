// SPDX-License-Identifier: MPL-2.0

package textutil

const (
	// DefaultCatNumberWidth is the field width for cat line numbers.
	DefaultCatNumberWidth = 6
	// DefaultHeadLines is the number of lines head prints without -n.
	DefaultHeadLines = 10
	// DefaultUniqCountWidth is the field width for uniq -c counts.
	DefaultUniqCountWidth = 4
	// DefaultWcCountWidth is the field width for each wc count.
	DefaultWcCountWidth = 8
)

// Options tunes the built-in commands. Zero fields take the defaults.
type Options struct {
	CatNumberWidth int
	HeadLines      int
	UniqCountWidth int
	WcCountWidth   int
}

// DefaultOptions returns the options used when no configuration is present.
func DefaultOptions() Options {
	return Options{
		CatNumberWidth: DefaultCatNumberWidth,
		HeadLines:      DefaultHeadLines,
		UniqCountWidth: DefaultUniqCountWidth,
		WcCountWidth:   DefaultWcCountWidth,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CatNumberWidth <= 0 {
		o.CatNumberWidth = d.CatNumberWidth
	}
	if o.HeadLines <= 0 {
		o.HeadLines = d.HeadLines
	}
	if o.UniqCountWidth <= 0 {
		o.UniqCountWidth = d.UniqCountWidth
	}
	if o.WcCountWidth <= 0 {
		o.WcCountWidth = d.WcCountWidth
	}
	return o
}
