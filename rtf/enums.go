package rtf

// Generic font family as declared in font table.
// ENUM(unknown, roman, swiss, modern, script, decorative)
type FontFamily int

// Font pitch as declared in font table.
// ENUM(default, fixed, variable)
type FontPitch int
