package clean

import (
	"testing"

	"github.com/spf13/afero"
)

func TestDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "dist/index.html", []byte("x"), 0644)
	_ = afero.WriteFile(fs, "dist/posts/1.html", []byte("x"), 0644)
	_ = afero.WriteFile(fs, "templates/index.html", []byte("keep"), 0644)

	removed, err := Dir(fs, "dist")
	if err != nil || !removed {
		t.Fatalf("Dir() = %v, %v; want true, nil", removed, err)
	}
	if ok, _ := afero.Exists(fs, "dist"); ok {
		t.Error("dist still exists")
	}
	if ok, _ := afero.Exists(fs, "templates/index.html"); !ok {
		t.Error("unrelated files were removed")
	}
	entries, _ := afero.ReadDir(fs, ".")
	for _, e := range entries {
		if e.Name() != "templates" {
			t.Errorf("leftover entry %q", e.Name())
		}
	}
}

func TestDir_Missing(t *testing.T) {
	removed, err := Dir(afero.NewMemMapFs(), "dist")
	if err != nil || removed {
		t.Errorf("Dir() = %v, %v; want false, nil", removed, err)
	}
}

func TestDir_RefusesWorkingDirectory(t *testing.T) {
	for _, dir := range []string{".", "", "/", "./"} {
		if _, err := Dir(afero.NewMemMapFs(), dir); err == nil {
			t.Errorf("Dir(%q) should fail", dir)
		}
	}
}
