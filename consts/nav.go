package consts

// Runes significant to pattern and URL parsing.
const (
	RuneFwdSlash  = '/'
	RuneColon     = ':'
	RuneAsterisk  = '*'
	RuneSemicolon = ';'
	RuneEquals    = '='
	RuneQuestion  = '?'
	RuneAmpersand = '&'
)

const (
	StrSlash = "/"

	// CatchAll is the fallback pattern segment. It may only appear as the
	// final segment of a pattern.
	CatchAll = "**"

	SchemeDelimiter = "://"

	// DefaultOutlet is the outlet routes are registered under when none is named.
	DefaultOutlet = "primary"
)
