package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or basename automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses the stored path.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of parse errors.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Context is the number of source lines shown above the error line.
	Context int8
}
