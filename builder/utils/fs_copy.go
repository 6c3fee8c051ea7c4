package utils

import (
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// MaxImageWidth is the width above which images are downscaled when compressing.
const MaxImageWidth = 1200

type copyTask struct {
	src string
	dst string
}

// CopyDirVFS copies srcDir from srcFs into dstDir on destFs, keeping relative
// paths and file names. With compress set, raster images wider than
// MaxImageWidth are downscaled in place (same name, same format). onWrite is
// called with every destination path written.
func CopyDirVFS(ctx context.Context, srcFs, destFs afero.Fs, srcDir, dstDir string, compress bool, onWrite func(string)) error {
	if err := destFs.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", dstDir, err)
	}

	group, groupctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	walkErr := afero.Walk(srcFs, srcDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := groupctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		t := copyTask{src: path, dst: filepath.Join(dstDir, rel)}
		group.Go(func() error {
			ext := strings.ToLower(filepath.Ext(t.src))
			var err error
			if compress && isRasterImage(ext) {
				err = downscaleImageVFS(srcFs, destFs, t.src, t.dst)
			} else {
				err = copyFileVFS(srcFs, destFs, t.src, t.dst)
			}
			if err != nil {
				return err
			}
			if onWrite != nil {
				onWrite(t.dst)
			}
			return nil
		})
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}
	if walkErr != nil {
		return fmt.Errorf("failed to walk %s: %w", srcDir, walkErr)
	}
	return nil
}

func isRasterImage(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif"
}

func copyFileVFS(srcFs, destFs afero.Fs, src, dst string) error {
	if err := destFs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	in, err := srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := destFs.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", src, err)
	}
	return nil
}

// downscaleImageVFS re-encodes an image in its own format when it is wider
// than MaxImageWidth, and copies it untouched otherwise.
func downscaleImageVFS(srcFs, destFs afero.Fs, src, dst string) error {
	f, err := srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source image %s: %w", src, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	_ = f.Close()
	if err != nil || cfg.Width <= MaxImageWidth {
		// Undecodable or already small enough.
		return copyFileVFS(srcFs, destFs, src, dst)
	}

	f, err = srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source image %s: %w", src, err)
	}
	defer func() { _ = f.Close() }()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", src, err)
	}
	img = imaging.Resize(img, MaxImageWidth, 0, imaging.Lanczos)

	format, err := imaging.FormatFromFilename(src)
	if err != nil {
		return fmt.Errorf("unsupported image %s: %w", src, err)
	}

	if err := destFs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}
	out, err := destFs.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination image %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if err := imaging.Encode(out, img, format, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", dst, err)
	}
	return nil
}
