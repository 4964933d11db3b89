// Package bcb consome a série histórica SGS do Banco Central do Brasil.
// A série 4390 traz a taxa SELIC acumulada no mês (percentual mensal), em JSON:
//
//	[{"data": "01/03/2024", "valor": "0.83"}, ...]
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
	"github.com/gestorfiscal/creditos-api/pkg/config"
)

var _ usecase.RateFeed = (*Client)(nil)

// Client cliente HTTP da API de dados abertos do BCB.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constrói o cliente com a URL da série e o timeout configurados.
func NewClient(cfg config.BCBConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// observation formato de cada ponto da série SGS.
type observation struct {
	Data  string `json:"data"`  // "01/03/2024" (sempre dia 01)
	Valor string `json:"valor"` // percentual do mês, ex. "0.83"
}

// FetchMonthlyRates baixa a série completa e devolve as taxas mensais em ordem
// cronológica (a API já devolve assim). Pontos malformados interrompem a
// importação: melhor falhar do que gravar uma série furada.
func (c *Client) FetchMonthlyRates(ctx context.Context) ([]selic.PeriodicRate, error) {
	url := c.baseURL + "?formato=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição BCB: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar série SGS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("série SGS respondeu %d", resp.StatusCode)
	}

	var observations []observation
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		return nil, fmt.Errorf("decodificar série SGS: %w", err)
	}

	rates := make([]selic.PeriodicRate, 0, len(observations))
	for i, obs := range observations {
		date, err := time.Parse("02/01/2006", obs.Data)
		if err != nil {
			return nil, fmt.Errorf("ponto %d: data %q: %w", i, obs.Data, err)
		}
		rate, err := decimal.NewFromString(obs.Valor)
		if err != nil {
			return nil, fmt.Errorf("ponto %d: valor %q: %w", i, obs.Valor, err)
		}
		rates = append(rates, selic.PeriodicRate{
			Month: int(date.Month()),
			Year:  date.Year(),
			Rate:  rate,
		})
	}
	return rates, nil
}
