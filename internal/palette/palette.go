// Package palette holds the preset color schemes for neatjson's terminal
// output. Values are hex colors; the root package turns them into lipgloss
// styles bound to a renderer.
package palette

// Palette assigns a color to each JSON token class the colorizer
// distinguishes.
type Palette struct {
	Key         string
	String      string
	Number      string
	Bool        string
	Null        string
	Brackets    string
	Punctuation string
}

// OneDark is the default scheme, VS Code dark+ inspired.
var OneDark = Palette{
	Key:         "#61AFEF",
	String:      "#98C379",
	Number:      "#D19A66",
	Bool:        "#56B6C2",
	Null:        "#5C6370",
	Brackets:    "#ABB2BF",
	Punctuation: "#ABB2BF",
}

// Dracula follows the Dracula theme's standard colors.
var Dracula = Palette{
	Key:         "#8BE9FD",
	String:      "#F1FA8C",
	Number:      "#BD93F9",
	Bool:        "#FF79C6",
	Null:        "#6272A4",
	Brackets:    "#F8F8F2",
	Punctuation: "#F8F8F2",
}

// GruvboxLight is a light-background scheme from the gruvbox family.
var GruvboxLight = Palette{
	Key:         "#076678",
	String:      "#79740E",
	Number:      "#8F3F71",
	Bool:        "#AF3A03",
	Null:        "#928374",
	Brackets:    "#3C3836",
	Punctuation: "#3C3836",
}
