package sampleframe

import (
	"github.com/hupe1980/sampleframe/meta"
)

type options struct {
	samples  *meta.Table
	features *meta.Table
	logger   *Logger
	factory  Factory
}

// Option configures Dataset construction.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (data only, empty mandatory metadata) is always valid.
type Option func(*options)

// WithSampleMeta sets the sample-axis metadata table. The table is cloned;
// the Dataset never aliases caller-owned metadata.
func WithSampleMeta(t *meta.Table) Option {
	return func(o *options) {
		o.samples = t
	}
}

// WithFeatureMeta sets the feature-axis metadata table. The table is cloned;
// the Dataset never aliases caller-owned metadata.
func WithFeatureMeta(t *meta.Table) Option {
	return func(o *options) {
		o.features = t
	}
}

// WithLogger sets the structured logger. Derived datasets inherit it.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithFactory sets the factory used to build datasets derived from this one
// by indexing, selection and concatenation. Concrete variants supply their
// own factory so derived containers are built by the variant's constructor
// rather than by generic code.
func WithFactory(f Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}
