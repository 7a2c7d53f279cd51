package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type fileDocumentRepository struct {
	dir   string
	files map[DocumentName]string
	mu    sync.Mutex
}

func NewFileDocumentRepository(dir string, files map[DocumentName]string) DocumentRepository {
	return &fileDocumentRepository{
		dir:   dir,
		files: files,
	}
}

func (r *fileDocumentRepository) path(name DocumentName) (string, error) {
	file, ok := r.files[name]
	if !ok || file == "" {
		return "", errors.Wrapf(domain.ErrDocumentNotFound, "documento %s não configurado", name)
	}
	return filepath.Join(r.dir, file), nil
}

func (r *fileDocumentRepository) ReadRaw(ctx context.Context, name DocumentName) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(domain.ErrDocumentNotFound, "arquivo %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	return data, nil
}

func (r *fileDocumentRepository) GetMenuDocument(ctx context.Context) (domain.MenuDocument, error) {
	data, err := r.ReadRaw(ctx, DocumentMenu)
	if err != nil {
		return nil, err
	}
	return decodeMenu(data)
}

func (r *fileDocumentRepository) GetNutritionDocument(ctx context.Context) (domain.NutritionDocument, error) {
	data, err := r.ReadRaw(ctx, DocumentNutrition)
	if err != nil {
		return nil, err
	}
	return decodeNutrition(data)
}

// SaveMenuMonth substitui os dias de um mês no documento de menu. A escrita é
// feita em arquivo temporário seguido de rename.
func (r *fileDocumentRepository) SaveMenuMonth(ctx context.Context, monthKey string, days map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.GetMenuDocument(ctx)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		doc = domain.MenuDocument{}
	} else if err != nil {
		return err
	}

	doc[monthKey] = days

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao codificar documento de menu")
	}

	path, err := r.path(DocumentMenu)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", filepath.Dir(path))
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "erro ao substituir %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"month": monthKey,
		"days":  len(days),
		"path":  path,
	}).Info("repository: mês gravado no documento de menu")

	return nil
}
