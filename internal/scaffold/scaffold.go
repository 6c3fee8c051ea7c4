package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/templates"
)

const defaultConfigYaml = `# Site Configuration
site:
  title: "My Blog"
  description: "A blog powered by GitHub Issues"
  author: "Author Name"
  # Leave empty to serve from the root. A GitHub Pages project site such as
  # https://owner.github.io/repo is served under /repo.
  url: ""
  avatar: ""
  favicon: ""

# Issues of this repository become posts. Both can also come from
# GITHUB_REPOSITORY, the token from GITHUB_TOKEN.
github:
  owner: "your-name"
  repo: "your-repo"

build:
  postsPerPage: 10
  excerptLength: 200
  timezone: "Asia/Shanghai"
  compress: false
  strictTemplates: true

features:
  sitemap: true
  rss: true

paths:
  templates: "templates"
  assets: "assets"
  output: "dist"
`

const defaultStyle = `body {
  max-width: 48rem;
  margin: 0 auto;
  padding: 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}
`

// Result lists what Init created and what already existed.
type Result struct {
	Created []string
	Skipped []string
}

// Init lays out a new site in root: a config file, the default page
// templates and an assets directory. Existing files are left alone.
func Init(fsys afero.Fs, root string) (*Result, error) {
	res := &Result{}
	write := func(rel string, data []byte) error {
		path := filepath.Join(root, rel)
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return err
		}
		if exists {
			res.Skipped = append(res.Skipped, rel)
			return nil
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
			return err
		}
		res.Created = append(res.Created, rel)
		return nil
	}

	if err := write(config.DefaultConfigFile, []byte(defaultConfigYaml)); err != nil {
		return res, err
	}

	entries, err := fs.ReadDir(templates.FS, ".")
	if err != nil {
		return res, err
	}
	for _, e := range entries {
		data, err := fs.ReadFile(templates.FS, e.Name())
		if err != nil {
			return res, err
		}
		if err := write(filepath.Join("templates", e.Name()), data); err != nil {
			return res, err
		}
	}

	if err := write(filepath.Join("assets", "style.css"), []byte(defaultStyle)); err != nil {
		return res, err
	}
	return res, nil
}

// Run initializes a new site in the directory given as the first argument,
// or the current directory.
func Run(args []string) int {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	fmt.Println("🌱 Initializing new blog...")

	res, err := Init(afero.NewOsFs(), root)
	for _, p := range res.Created {
		fmt.Printf("   📄 Created '%s'\n", p)
	}
	for _, p := range res.Skipped {
		fmt.Printf("   ⚠️ '%s' already exists, skipping.\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to initialize: %v\n", err)
		return 1
	}

	fmt.Println("\n✅ Blog initialized successfully!")
	fmt.Println("   👉 Set github.owner and github.repo in config.yaml, then run 'looks build'.")
	return 0
}
