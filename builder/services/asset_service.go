package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/utils"
)

type assetServiceImpl struct {
	sourceFs afero.Fs
	destFs   afero.Fs
	ctx      config.BuildContext
	outDir   string
	onWrite  func(string)
	logger   *slog.Logger
}

// NewAssetService copies the configured assets directory to {outDir}/assets.
// onWrite, if set, is told about every file written.
func NewAssetService(sourceFs, destFs afero.Fs, ctx config.BuildContext, outDir string, onWrite func(string), logger *slog.Logger) AssetService {
	return &assetServiceImpl{
		sourceFs: sourceFs,
		destFs:   destFs,
		ctx:      ctx,
		outDir:   outDir,
		onWrite:  onWrite,
		logger:   logger,
	}
}

func (s *assetServiceImpl) Build(ctx context.Context) error {
	fmt.Println("📁 Copying assets...")

	if !utils.DirExists(s.sourceFs, s.ctx.Paths.Assets) {
		s.logger.Debug("No assets directory, skipping copy", "path", s.ctx.Paths.Assets)
		return nil
	}

	dest := filepath.Join(s.outDir, "assets")
	if err := utils.CopyDirVFS(ctx, s.sourceFs, s.destFs, s.ctx.Paths.Assets, dest, s.ctx.Compress, s.onWrite); err != nil {
		return fmt.Errorf("failed to copy assets: %w", err)
	}
	return nil
}
