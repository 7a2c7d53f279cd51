package comuneclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/pkg/errors"
)

const pagePath = "/flex/cm/pages/ServeBLOB.php/L/IT/IDPagina"

type Client interface {
	GetMenuPage(ctx context.Context, pageID string) ([]byte, error)
}

type ComuneClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Comune.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ComuneClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Comune.URL,
	}
}

// GetMenuPage baixa a página HTML do cardápio mensal publicada pelo Comune
func (c *ComuneClient) GetMenuPage(ctx context.Context, pageID string) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, pagePath, pageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; refezionify/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "it-IT,it;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return body, nil
}
