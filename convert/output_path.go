package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"rtfc/config"
	"rtfc/state"
)

// buildOutputPath returns output file name for src. Src is relative to the
// processed source (base name for single file). Unless NoDirs is requested
// relative directory of src is kept under dst.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, cleanDir(filepath.Dir(src), env))
	}
	return filepath.Join(outDir, buildFileName(src, env.Format, env))
}

func buildFileName(src string, format config.OutputFormat, env *state.LocalEnv) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return cleanPathSegment(base, env) + format.Ext()
}

func cleanDir(dir string, env *state.LocalEnv) string {
	if dir == "." || dir == "" {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(dir), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		out = append(out, cleanPathSegment(p, env))
	}
	return filepath.Join(out...)
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg != nil && env.Cfg.Output.TransliterateNames {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
