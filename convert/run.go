// Package convert drives parsing of RTF sources found on disk or in zip
// archives and writes parsed documents in requested format.
package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rtfc/archive"
	"rtfc/config"
	"rtfc/doc"
	"rtfc/rtf"
	"rtfc/rtf/lexer"
	"rtfc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if cmd.IsSet("to") {
		format, err := config.ParseOutputFormat(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Format), zap.Error(err))
		} else {
			env.Format = format
		}
	}
	env.NoDirs = cmd.Bool("nodirs")
	env.Overwrite = env.Overwrite || cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive or single file) and
// processes it accordingly. Path may continue inside of an archive.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	exts := extensions(ctx)

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return processDir(ctx, head, dst, log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			return processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log)
		}

		ok, err := isRTFFile(head, exts)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if ok && len(tail) == 0 {
			return processFile(ctx, head, filepath.Base(head), dst, log)
		}
		return fmt.Errorf("input was not recognized as RTF document (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

func extensions(ctx context.Context) []string {
	if env := state.EnvFromContext(ctx); env.Cfg != nil && len(env.Cfg.Output.Extensions) > 0 {
		return env.Cfg.Output.Extensions
	}
	return []string{".rtf"}
}

func naturalCompare(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

// processDir finds documents and archives under dir and processes them in
// natural order of their paths. Failures of single documents do not stop
// processing, they are collected and returned together.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	exts := extensions(ctx)

	var docs, archives []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		if arc, err := isArchiveFile(path); err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		} else if arc {
			archives = append(archives, path)
			return nil
		}

		ok, err := isRTFFile(path, exts)
		switch {
		case err != nil:
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
		case !ok:
			log.Debug("Skipping file, not recognized as RTF document or archive", zap.String("file", path))
		default:
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(docs)+len(archives) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}
	slices.SortFunc(docs, naturalCompare)
	slices.SortFunc(archives, naturalCompare)

	var errs error
	for _, path := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		errs = multierr.Append(errs, processFile(ctx, path, rel, dst, log))
	}
	for _, path := range archives {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := filepath.Dir(strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator)))
		if err := processArchive(ctx, path, "", rel, dst, log); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to process archive %s: %w", path, err))
		}
	}
	return errs
}

// processArchive processes documents stored in archive under pathIn.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) error {
	exts := extensions(ctx)

	count := 0
	var errs error
	err := archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := isRTFInArchive(f, exts)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", f.Name), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as RTF document", zap.String("archive", arc), zap.String("file", f.Name))
			return nil
		}
		count++

		r, err := f.Open()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to open %s in %s: %w", f.Name, arc, err))
			return nil
		}
		defer r.Close()

		errs = multierr.Append(errs, processSource(ctx, r, filepath.Join(pathOut, filepath.FromSlash(f.Name)), dst, log))
		return nil
	})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return errs
}

func processFile(ctx context.Context, path, src, dst string, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer file.Close()
	return processSource(ctx, file, src, dst, log)
}

// processSource parses single document. Src is the path of the document
// relative to the processed source, it defines output location under dst.
func processSource(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	session := uuid.NewString()
	log = log.With(zap.String("session", session))

	var outputName string
	log.Info("Parsing starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Parsing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("parsing panic (%s): %v", src, r)
			return
		}
		if rerr != nil {
			log.Error("Parsing failed", zap.Duration("elapsed", time.Since(start)), zap.Error(rerr))
			return
		}
		log.Info("Parsing completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	if env.Rpt != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read source (%s): %w", src, err)
		}
		env.Rpt.StoreData(fmt.Sprintf("source-%s%s", session, filepath.Ext(src)), data)
		r = bytes.NewReader(data)
	}

	d := doc.New(log)
	p := rtf.NewParser(lexer.New(r, env.DefaultEncoding, log), d, nil, env.ParserOptions(), log)
	if err := p.Parse(ctx); err != nil {
		return fmt.Errorf("unable to parse rtf source (%s): %w", src, err)
	}

	outputName = buildOutputPath(src, dst, env)
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	tables := &doc.Tables{Fonts: p.Fonts(), Colors: p.Colors(), Styles: p.Styles()}
	if err := writeOutput(d, tables, env.Format, outputName); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", session, env.Format.Ext()), outputName)
		env.Rpt.StoreData(fmt.Sprintf("tree-%s.txt", session), []byte(d.Tree()))
	}
	return nil
}

func writeOutput(d *doc.Document, tables *doc.Tables, format config.OutputFormat, name string) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	switch format {
	case config.OutputFormatText:
		return d.WriteText(out)
	case config.OutputFormatTree:
		return d.WriteTree(out)
	default:
		return d.WriteXML(out, tables)
	}
}
