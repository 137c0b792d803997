package transform

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind tells the transform variants apart.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks an invalid Kind

	KindStatic  // static
	KindDynamic // dynamic
	KindExample // example
)
