package keyio

// Palette renders text in semantic colors. Implementations either wrap text
// in ANSI escapes or pass it through untouched, so call sites never branch on
// color capability.
type Palette interface {
	Red(s string) string
	Green(s string) string
	Yellow(s string) string
	Cyan(s string) string
	Bold(s string) string
	Dim(s string) string
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
)

type ansiPalette struct{}

func (ansiPalette) Red(s string) string    { return ansiRed + s + ansiReset }
func (ansiPalette) Green(s string) string  { return ansiGreen + s + ansiReset }
func (ansiPalette) Yellow(s string) string { return ansiYellow + s + ansiReset }
func (ansiPalette) Cyan(s string) string   { return ansiCyan + s + ansiReset }
func (ansiPalette) Bold(s string) string   { return ansiBold + s + ansiReset }
func (ansiPalette) Dim(s string) string    { return ansiDim + s + ansiReset }

type plainPalette struct{}

func (plainPalette) Red(s string) string    { return s }
func (plainPalette) Green(s string) string  { return s }
func (plainPalette) Yellow(s string) string { return s }
func (plainPalette) Cyan(s string) string   { return s }
func (plainPalette) Bold(s string) string   { return s }
func (plainPalette) Dim(s string) string    { return s }
