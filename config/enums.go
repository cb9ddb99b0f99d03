package config

// Specification of requested output type.
// ENUM(xml, text, tree)
type OutputFormat int

func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatXml:
		return ".xml"
	case OutputFormatText:
		return ".txt"
	case OutputFormatTree:
		return ".tree.txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
