package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.zip")

	rpt, err := (&ReporterConfig{Destination: dest}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(dir, "style.css")
	if err := os.WriteFile(src, []byte("h1 {\n  color: red;\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(copied, []byte("body: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rpt.Store("input/style.css", src)
	if err := rpt.StoreCopy("profile.yaml", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// copy is taken at the time of the call
	if err := os.WriteFile(copied, []byte("changed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rpt.StoreData("output/style.css", []byte("h1 {\n  color: blue;\n}\n"))
	rpt.Store("missing", filepath.Join(dir, "absent.txt"))

	if got := rpt.Name(); got != dest {
		t.Errorf("Name() = %q, want %q", got, dest)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, dest)
	want := map[string]string{
		"input/style.css":  "h1 {\n  color: red;\n}\n",
		"profile.yaml":     "body: {}\n",
		"output/style.css": "h1 {\n  color: blue;\n}\n",
	}
	for name, content := range want {
		if files[name] != content {
			t.Errorf("%s = %q, want %q", name, files[name], content)
		}
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent file should not be archived")
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"input/style.css", "missing", "output/style.css", "profile.yaml"} {
		if !strings.Contains(manifest, "\t"+name+"\t") {
			t.Errorf("MANIFEST does not mention %s:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	dir := t.TempDir()
	rpt := &Report{entries: make(map[string]entry)}

	src := filepath.Join(dir, "a.css")
	if err := os.WriteFile(src, []byte("a {}"), 0644); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := rpt.StoreCopy("a.css", src); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(rpt.entries) != 2 {
		t.Errorf("entries = %d, want 2", len(rpt.entries))
	}
}

func TestReport_StoreDataTwicePanics(t *testing.T) {
	rpt := &Report{entries: make(map[string]entry)}
	rpt.StoreData("x", []byte("1"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on overwrite")
		}
	}()
	rpt.StoreData("x", []byte("2"))
}

func TestReport_NilIsNoop(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"style.css", "style.css"},
		{"css/a.css", "cssa.css"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
