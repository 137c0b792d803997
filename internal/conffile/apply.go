package conffile

import (
	"fmt"

	"frame-transformer/internal/geometry"
	"frame-transformer/internal/transform"
)

// Apply validates f and registers its content into conf. Registration is
// all-or-nothing: entries are staged against a scratch configuration that
// knows conf's frames and checker, and merged into conf only if every entry
// is accepted.
func Apply(f *File, conf *transform.Configuration) error {
	if diags := Validate(f); diags.HasErrors() {
		return fmt.Errorf("%w: %w", transform.ErrInvalidConfiguration, diags.Error())
	}

	staged := transform.NewConfiguration(
		transform.WithChecker(conf.Checker()),
		transform.WithLogger(conf.Logger()),
	)

	if err := staged.AddFrames(conf.Frames()...); err != nil {
		return err
	}

	if err := stage(f, staged); err != nil {
		return err
	}

	conf.Merge(staged)

	return nil
}

func stage(f *File, conf *transform.Configuration) error {
	if err := conf.AddFrames(f.Frames...); err != nil {
		return fmt.Errorf("frames: %w", err)
	}

	for i, e := range f.Static {
		geom, err := e.geometry()
		if err != nil {
			return fmt.Errorf("static[%d]: %w", i, err)
		}

		if _, err := conf.StaticTransform(e.From, e.To, geom...); err != nil {
			return fmt.Errorf("static[%d]: %w", i, err)
		}
	}

	for i, e := range f.Dynamic {
		if _, err := conf.DynamicTransform(e.From, e.To, e.Producer); err != nil {
			return fmt.Errorf("dynamic[%d]: %w", i, err)
		}
	}

	for i, e := range f.Example {
		geom, err := e.geometry()
		if err != nil {
			return fmt.Errorf("example[%d]: %w", i, err)
		}

		if _, err := conf.ExampleTransform(e.From, e.To, geom...); err != nil {
			return fmt.Errorf("example[%d]: %w", i, err)
		}
	}

	return nil
}

// geometry converts the entry's numbers into arguments for the
// configuration's registration methods.
func (e GeometryEntry) geometry() ([]any, error) {
	var geom []any

	if len(e.Translation) > 0 {
		v, err := geometry.VectorFromSlice(e.Translation)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", transform.ErrArgument, err)
		}

		geom = append(geom, v)
	}

	if len(e.Rotation) > 0 {
		q, err := geometry.QuaternionFromSlice(e.Rotation)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", transform.ErrArgument, err)
		}

		geom = append(geom, q)
	}

	return geom, nil
}

// Export renders conf as a File. Producers that are not strings are written
// with their default formatting, so the result may not load back into the
// same producers.
func Export(conf *transform.Configuration) *File {
	f := &File{
		Version: CurrentVersion,
		Frames:  conf.Frames(),
	}

	for _, tr := range conf.Transforms() {
		switch t := tr.(type) {
		case *transform.StaticTransform:
			f.Static = append(f.Static, GeometryEntry{
				From:        t.From(),
				To:          t.To(),
				Translation: t.Translation.Slice(),
				Rotation:    t.Rotation.Slice(),
			})
		case *transform.DynamicTransform:
			producer, ok := t.Producer.(string)
			if !ok {
				producer = fmt.Sprint(t.Producer)
			}

			f.Dynamic = append(f.Dynamic, DynamicEntry{From: t.From(), To: t.To(), Producer: producer})
		}
	}

	for _, t := range conf.ExampleTransforms() {
		f.Example = append(f.Example, GeometryEntry{
			From:        t.From(),
			To:          t.To(),
			Translation: t.Translation.Slice(),
			Rotation:    t.Rotation.Slice(),
		})
	}

	return f
}
