package repository

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/pkg/errors"
)

// httpDocumentRepository lê os documentos publicados em outro host (por exemplo o
// GitHub Pages da versão estática). É somente leitura.
type httpDocumentRepository struct {
	baseURL    string
	files      map[DocumentName]string
	httpClient *http.Client
}

func NewHTTPDocumentRepository(baseURL string, files map[DocumentName]string, timeout time.Duration) DocumentRepository {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &httpDocumentRepository{
		baseURL: baseURL,
		files:   files,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *httpDocumentRepository) ReadRaw(ctx context.Context, name DocumentName) ([]byte, error) {
	file, ok := r.files[name]
	if !ok || file == "" {
		return nil, errors.Wrapf(domain.ErrDocumentNotFound, "documento %s não configurado", name)
	}

	endpoint, err := url.Parse(r.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(domain.ErrDocumentNotFound, "%s", endpoint.String())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return data, nil
}

func (r *httpDocumentRepository) GetMenuDocument(ctx context.Context) (domain.MenuDocument, error) {
	data, err := r.ReadRaw(ctx, DocumentMenu)
	if err != nil {
		return nil, err
	}
	return decodeMenu(data)
}

func (r *httpDocumentRepository) GetNutritionDocument(ctx context.Context) (domain.NutritionDocument, error) {
	data, err := r.ReadRaw(ctx, DocumentNutrition)
	if err != nil {
		return nil, err
	}
	return decodeNutrition(data)
}

func (r *httpDocumentRepository) SaveMenuMonth(context.Context, string, map[string]string) error {
	return domain.ErrReadOnlyRepository
}
