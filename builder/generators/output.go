package generators

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"

	"github.com/Master08s/looks-blog/builder/renderer"
	"github.com/Master08s/looks-blog/builder/utils"
)

// Output is where generators write the site.
type Output struct {
	Fs  afero.Fs
	Dir string

	// Minifier, when set, minifies every file by its extension.
	Minifier *minify.M

	// OnWrite is called with the site-relative path of every written file.
	OnWrite func(rel string)
}

// Write stores data at rel below the output directory.
func (o Output) Write(rel string, data []byte) error {
	if o.Minifier != nil {
		data = utils.MinifyFile(o.Minifier, rel, data)
	}
	if err := utils.WriteFileVFS(o.Fs, filepath.Join(o.Dir, filepath.FromSlash(rel)), data); err != nil {
		return err
	}
	if o.OnWrite != nil {
		o.OnWrite(rel)
	}
	return nil
}

// WritePage renders data with r and stores it at rel.
func (o Output) WritePage(r *renderer.Renderer, rel string, data renderer.PageData) error {
	return o.Write(rel, []byte(r.Render(data)))
}
