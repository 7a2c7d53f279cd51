package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DocumentName identifica um dos dois documentos estáticos
type DocumentName string

const (
	DocumentMenu      DocumentName = "menu"
	DocumentNutrition DocumentName = "nutrition"
)

//go:generate mockgen -source=documents.go -destination=mocks/mock_documents.go -package=mocks
type DocumentRepository interface {
	GetMenuDocument(ctx context.Context) (domain.MenuDocument, error)
	GetNutritionDocument(ctx context.Context) (domain.NutritionDocument, error)
	ReadRaw(ctx context.Context, name DocumentName) ([]byte, error)
	SaveMenuMonth(ctx context.Context, monthKey string, days map[string]string) error
}

// NewDocumentRepository usa DATA_BASE_URL quando configurada, senão DATA_DIR
func NewDocumentRepository(cfg *config.Config) DocumentRepository {
	files := map[DocumentName]string{
		DocumentMenu:      cfg.Data.MenuFile,
		DocumentNutrition: cfg.Data.NutritionFile,
	}

	if cfg.Data.DataBaseURL != "" {
		return NewHTTPDocumentRepository(cfg.Data.DataBaseURL, files, cfg.Data.FetchTimeout)
	}

	return NewFileDocumentRepository(cfg.Data.DataDir, files)
}

func decodeMenu(data []byte) (domain.MenuDocument, error) {
	doc := domain.MenuDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar documento de menu")
	}
	return doc, nil
}

func decodeNutrition(data []byte) (domain.NutritionDocument, error) {
	doc := domain.NutritionDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar documento de nutrição")
	}
	return doc, nil
}
