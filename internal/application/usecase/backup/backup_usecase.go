package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/apperror"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

const backupFolder = "backups/portfolio"

// Document is the raw backup format: fragment key to stored text, exactly
// as found. Malformed fragments are kept as they are.
type Document struct {
	CreatedAt time.Time         `json:"created_at"`
	Fragments map[string]string `json:"fragments"`
}

type BackupUseCase struct {
	store    portfolio.Store
	uploader service.Uploader
	logger   logger.Logger
}

func NewBackupUseCase(store portfolio.Store, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		store:    store,
		uploader: uploader,
		logger:   log,
	}
}

type BackupOutput struct {
	Document Document
	URL      string
}

// Execute collects every written fragment and, when an uploader is
// configured, uploads the document.
func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting portfolio backup...")

	doc := Document{CreatedAt: time.Now().UTC(), Fragments: map[string]string{}}
	for _, key := range portfolio.Keys {
		raw, found, err := uc.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read fragment %s failed: %w", key, err)
		}
		if found {
			doc.Fragments[key] = raw
		}
	}

	out := &BackupOutput{Document: doc}
	if uc.uploader == nil {
		return out, nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal backup", err)
	}

	publicID := fmt.Sprintf("backup-%s.json", doc.CreatedAt.Format("2006-01-02_15-04-05"))
	out.URL, err = uc.uploader.Upload(ctx, bytes.NewReader(data), backupFolder, publicID)
	if err != nil {
		return nil, fmt.Errorf("upload backup failed: %w", err)
	}

	uc.logger.Info("Portfolio backup completed and uploaded successfully",
		zap.String("url", out.URL),
		zap.String("public_id", publicID),
		zap.Int("fragments", len(doc.Fragments)),
	)
	return out, nil
}

type RestoreUseCase struct {
	store  portfolio.Store
	logger logger.Logger
}

func NewRestoreUseCase(store portfolio.Store, log logger.Logger) *RestoreUseCase {
	return &RestoreUseCase{store: store, logger: log}
}

// Execute writes back every known fragment of doc. Unknown keys are
// rejected before anything is written.
func (uc *RestoreUseCase) Execute(ctx context.Context, doc Document) ([]string, error) {
	for key := range doc.Fragments {
		if !isFragmentKey(key) {
			return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown fragment key %q", key), nil)
		}
	}

	var restored []string
	for _, key := range portfolio.Keys {
		raw, ok := doc.Fragments[key]
		if !ok {
			continue
		}
		if err := uc.store.Set(ctx, key, raw); err != nil {
			return restored, fmt.Errorf("restore fragment %s failed: %w", key, err)
		}
		restored = append(restored, key)
	}

	uc.logger.Info("Portfolio restored from backup", zap.Strings("keys", restored))
	return restored, nil
}

func isFragmentKey(key string) bool {
	for _, k := range portfolio.Keys {
		if k == key {
			return true
		}
	}
	return false
}
