// Package storage persists block documents for the visualizer.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// CurrentFileName is overwritten with every new block.
const CurrentFileName = "current_block.json"

var documentJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// ArchiveFileName returns the per-height archive file name.
func ArchiveFileName(height int64) string {
	return fmt.Sprintf("block_%d.json", height)
}

// DocumentWriter writes block documents into a directory.
type DocumentWriter struct {
	fs      afero.Fs
	dir     string
	metrics Metrics
	logger  *zap.Logger
}

// NewDocumentWriter creates dir if needed and returns a writer for it.
func NewDocumentWriter(fs afero.Fs, dir string, metrics Metrics, logger *zap.Logger) (*DocumentWriter, error) {
	if dir == "" {
		return nil, errors.New("output dir is required")
	}
	if metrics == nil {
		return nil, errors.New("document writer metrics is required")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &DocumentWriter{
		fs:      fs,
		dir:     dir,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Write stores doc as the current document and as its height archive.
func (w *DocumentWriter) Write(ctx context.Context, doc *model.BlockDocument) error {
	payload, err := EncodeDocument(doc)
	if err != nil {
		w.logger.Error("failed to encode block document", zap.Error(err))
		return err
	}

	current := filepath.Join(w.dir, CurrentFileName)
	if err := w.writeFile(ctx, "write_current", current, payload); err != nil {
		w.logger.Error("failed to save block document", zap.String("path", current), zap.Error(err))
		return err
	}
	w.logger.Info("block document saved", zap.String("path", current))

	archive := filepath.Join(w.dir, ArchiveFileName(doc.Block.Height))
	if err := w.writeFile(ctx, "write_archive", archive, payload); err != nil {
		w.logger.Error("failed to archive block document", zap.String("path", archive), zap.Error(err))
		return err
	}
	return nil
}

// EncodeDocument renders doc as indented UTF-8 JSON.
func EncodeDocument(doc *model.BlockDocument) ([]byte, error) {
	payload, err := documentJSON.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode block %d: %w", doc.Block.Height, err)
	}
	return append(payload, '\n'), nil
}

// writeFile replaces path atomically through a temp file in the same directory.
func (w *DocumentWriter) writeFile(ctx context.Context, operation, path string, payload []byte) (err error) {
	started := time.Now()
	defer func() {
		w.metrics.Observe(operation, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := afero.TempFile(w.fs, w.dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = w.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = w.fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = w.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
