package utils

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// SyncVFS copies the tree rooted at srcDir on srcFs to targetDir on destFs
// using parallel workers. Files whose content is already identical are left
// alone. It returns the number of files visited.
func SyncVFS(ctx context.Context, srcFs afero.Fs, srcDir string, destFs afero.Fs, targetDir string) (int, error) {
	fmt.Println("💾 Syncing in-memory filesystem to disk...")

	type syncTask struct {
		src string
		dst string
	}

	var tasks []syncTask
	err := afero.Walk(srcFs, srcDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(targetDir, rel)
		if info.IsDir() {
			return destFs.MkdirAll(dst, 0755)
		}
		tasks = append(tasks, syncTask{src: path, dst: dst})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan VFS: %w", err)
	}

	group, groupctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU() * 2)
	for _, t := range tasks {
		if groupctx.Err() != nil {
			break
		}
		group.Go(func() error {
			return syncSingleFile(srcFs, destFs, t.src, t.dst)
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	// The group context only reports the parent's cancellation here.
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

func syncSingleFile(srcFs, destFs afero.Fs, src, dst string) error {
	srcContent, err := afero.ReadFile(srcFs, src)
	if err != nil {
		return err
	}

	destContent, err := afero.ReadFile(destFs, dst)
	if err == nil && bytes.Equal(srcContent, destContent) {
		return nil
	}

	if err := destFs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return afero.WriteFile(destFs, dst, srcContent, 0644)
}
