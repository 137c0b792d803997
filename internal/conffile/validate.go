package conffile

import (
	"fmt"
	"math"
	"slices"

	"frame-transformer/internal/diagnostic"
	"frame-transformer/internal/match"
	"frame-transformer/internal/transform"
)

// maxSuggestions caps "did you mean" hints per diagnostic.
const maxSuggestions = 3

// Validate checks a configuration file structurally, before anything is
// registered. Errors make Apply fail; warnings flag entries that are legal
// but likely mistakes.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "configuration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "version", f.Version)
	}

	declared := validateFrames(f, res)

	pairs := map[transform.Pair]string{}
	seen := func(entry, from, to string) {
		if from == "" || to == "" || from == to {
			return
		}

		pair := transform.PairOf(from, to)
		if prev, ok := pairs[pair]; ok {
			res.AddWarning("duplicate_pair",
				fmt.Sprintf("overrides %s; the later entry wins", prev), entry, pair.String())
		}

		pairs[pair] = entry
	}

	for i, e := range f.Static {
		entry := fmt.Sprintf("static[%d]", i)
		validateEndpoints(res, entry, e.From, e.To, declared)
		validateGeometry(res, entry, e)
		seen(entry, e.From, e.To)
	}

	for i, e := range f.Dynamic {
		entry := fmt.Sprintf("dynamic[%d]", i)
		validateEndpoints(res, entry, e.From, e.To, declared)

		if e.Producer == "" {
			res.AddError("empty_producer", "dynamic transform needs a producer", entry, e.From+"->"+e.To)
		}

		seen(entry, e.From, e.To)
	}

	examples := map[transform.Pair]string{}

	for i, e := range f.Example {
		entry := fmt.Sprintf("example[%d]", i)
		validateEndpoints(res, entry, e.From, e.To, declared)
		validateGeometry(res, entry, e)

		if e.From == "" || e.To == "" || e.From == e.To {
			continue
		}

		pair := transform.PairOf(e.From, e.To)
		if prev, ok := examples[pair]; ok {
			res.AddWarning("duplicate_pair",
				fmt.Sprintf("overrides %s; the later entry wins", prev), entry, pair.String())
		}

		examples[pair] = entry
	}

	return res
}

// validateFrames checks the frames list and returns the declared names.
func validateFrames(f *File, res *diagnostic.Diagnostics) []string {
	declared := make([]string, 0, len(f.Frames))
	dup := map[string]struct{}{}

	for i, name := range f.Frames {
		entry := fmt.Sprintf("frames[%d]", i)

		if !transform.ValidFrameName(name) {
			var suggestions []string
			if s := match.Sanitize(name); s != "" {
				suggestions = append(suggestions, s)
			}

			res.AddError("invalid_frame_name",
				"frame names may only contain letters, digits and underscores", entry, name, suggestions...)

			continue
		}

		if _, ok := dup[name]; ok {
			res.AddWarning("duplicate_frame", "frame is declared more than once", entry, name)
			continue
		}

		dup[name] = struct{}{}
		declared = append(declared, name)
	}

	return declared
}

func validateEndpoints(res *diagnostic.Diagnostics, entry, from, to string, declared []string) {
	for _, name := range []string{from, to} {
		switch {
		case name == "":
			res.AddError("missing_frame", "transform needs both from and to", entry, "")
		case !transform.ValidFrameName(name):
			var suggestions []string
			if s := match.Sanitize(name); s != "" {
				suggestions = append(suggestions, s)
			}

			res.AddError("invalid_frame_name",
				"frame names may only contain letters, digits and underscores", entry, name, suggestions...)
		case len(declared) > 0 && !slices.Contains(declared, name):
			// Undeclared frames are declared implicitly. When the file lists
			// its frames, a near miss is probably a typo.
			if hints := match.Suggest(name, declared, maxSuggestions); len(hints) > 0 {
				res.AddWarning("undeclared_frame",
					fmt.Sprintf("frame is not in the frames list (did you mean %s?)", hints[0]), entry, name)
			} else {
				res.AddInfo("implicit_frame", "frame is declared implicitly", entry, name)
			}
		}
	}

	if from != "" && from == to {
		res.AddError("self_loop", "transform from a frame to itself", entry, from)
	}
}

func validateGeometry(res *diagnostic.Diagnostics, entry string, e GeometryEntry) {
	subject := e.From + "->" + e.To

	if len(e.Translation) == 0 && len(e.Rotation) == 0 {
		res.AddError("missing_geometry", "needs a translation, a rotation or both", entry, subject)
		return
	}

	if len(e.Translation) > 0 && (len(e.Translation) != 3 || !finite(e.Translation)) {
		res.AddError("invalid_translation",
			fmt.Sprintf("translation must be 3 finite numbers, got %v", e.Translation), entry, subject)
	}

	if len(e.Rotation) > 0 && (len(e.Rotation) != 4 || !finite(e.Rotation)) {
		res.AddError("invalid_rotation",
			fmt.Sprintf("rotation must be 4 finite numbers [w, x, y, z], got %v", []float64(e.Rotation)),
			entry, subject)
	}
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
