package renderer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/templates"
	"github.com/Master08s/looks-blog/builder/utils"
)

// Templates holds the template source of each page kind.
type Templates map[PageKind]string

// LoadTemplates reads the six page templates from dir on fsys. When dir does
// not exist the embedded defaults are used instead; when it exists every
// template must be present.
//
// Each template is checked against its page kind's placeholders. Unknown
// placeholders fail the load when strict is set and are logged otherwise.
func LoadTemplates(fsys afero.Fs, dir string, strict bool, logger *slog.Logger) (Templates, error) {
	read := func(name string) ([]byte, error) {
		return afero.ReadFile(fsys, filepath.Join(dir, name))
	}
	if !utils.DirExists(fsys, dir) {
		logger.Info("Templates directory not found, using built-in templates", "dir", dir)
		read = func(name string) ([]byte, error) {
			return fs.ReadFile(templates.FS, name)
		}
	}

	out := make(Templates, len(AllPages))
	var problems []error
	for _, kind := range AllPages {
		data, err := read(kind.TemplateFile())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, filepath.Join(dir, kind.TemplateFile()))
			}
			return nil, fmt.Errorf("failed to read template %s: %w", kind.TemplateFile(), err)
		}
		tpl := string(data)
		if err := Validate(tpl, kind); err != nil {
			if strict {
				problems = append(problems, err)
			} else {
				logger.Warn("Template uses unknown placeholders", "error", err)
			}
		}
		out[kind] = tpl
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return out, nil
}
