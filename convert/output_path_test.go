package convert

import (
	"path/filepath"
	"testing"

	"rtfc/config"
	"rtfc/state"
)

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.FromSlash("/out")

	tests := []struct {
		name          string
		src           string
		format        config.OutputFormat
		noDirs        bool
		transliterate bool
		want          string
	}{
		{"single file", "letter.rtf", config.OutputFormatXml, false, false, "/out/letter.xml"},
		{"keeps directories", "a/b/letter.rtf", config.OutputFormatText, false, false, "/out/a/b/letter.txt"},
		{"no directories", "a/b/letter.rtf", config.OutputFormatTree, true, false, "/out/letter.tree.txt"},
		{"only last extension dropped", "report.v2.rtf", config.OutputFormatText, false, false, "/out/report.v2.txt"},
		{"leading dots removed", "..hidden.rtf", config.OutputFormatText, false, false, "/out/hidden.txt"},
		{"transliterated", "Отчет/Привет Мир.rtf", config.OutputFormatText, false, true, "/out/otchet/privet-mir.txt"},
		{"not transliterated", "Отчет/Привет Мир.rtf", config.OutputFormatText, false, false, "/out/Отчет/Привет Мир.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &state.LocalEnv{
				Cfg:    &config.Config{Output: config.OutputConfig{TransliterateNames: tt.transliterate}},
				Format: tt.format,
				NoDirs: tt.noDirs,
			}
			got := buildOutputPath(filepath.FromSlash(tt.src), dst, env)
			if want := filepath.FromSlash(tt.want); got != want {
				t.Errorf("buildOutputPath() = %q, want %q", got, want)
			}
		})
	}
}
