package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openArchive(t *testing.T, name string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReportClose_RemovesCopies(t *testing.T) {
	tmpDir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	src := filepath.Join(tmpDir, "input.rtf")
	if err := os.WriteFile(src, []byte(`{\rtf1 hello}`), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	if err := r.StoreCopy("source.rtf", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	if len(r.temps) != 1 {
		t.Fatalf("expected one temporary directory, got %d", len(r.temps))
	}
	copyDir := r.temps[0]

	// changes after the copy must not get into the archive
	if err := os.WriteFile(src, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to overwrite source: %v", err)
	}
	r.Store("input", src)
	r.StoreData("config.yaml", []byte("version: 1\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	if _, err := os.Stat(copyDir); !os.IsNotExist(err) {
		t.Errorf("expected copy directory to be removed, stat error: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("stored file should not be removed, got error: %v", err)
	}

	files := openArchive(t, r.Name())
	if got := files["source.rtf"]; got != `{\rtf1 hello}` {
		t.Errorf("source.rtf = %q, want original content", got)
	}
	if got := files["input"]; got != "changed" {
		t.Errorf("input = %q, want current content", got)
	}
	if got := files["config.yaml"]; got != "version: 1\n" {
		t.Errorf("config.yaml = %q", got)
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"source.rtf", "input", "config.yaml"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST does not mention %s:\n%s", name, manifest)
		}
	}
}

func TestReportStoreCopy_VersionsNames(t *testing.T) {
	tmpDir := t.TempDir()
	r := &Report{entries: make(map[string]entry)}
	defer func() {
		for _, d := range r.temps {
			os.RemoveAll(d)
		}
	}()

	src := filepath.Join(tmpDir, "a.rtf")
	if err := os.WriteFile(src, []byte("a"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	for range 2 {
		if err := r.StoreCopy("a.rtf", src); err != nil {
			t.Fatalf("StoreCopy() error: %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
}

func TestReportStoreCopy_Directory(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("dir", t.TempDir()); err == nil {
		t.Error("expected error copying directory")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name of nil report = %q, want empty", r.Name())
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
