package tosu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/EgorLis/osunpbot/internal/state"
)

const DefaultAPIURL = "http://localhost:24050"

// Client — HTTP-клиент эндпоинта расчёта pp у tosu.
type Client struct {
	http    *http.Client
	baseURL string
}

type ppResponse struct {
	PP    *float64 `json:"pp"`
	Error string   `json:"error"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		http:    &http.Client{Timeout: 5 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// CalculatePP считает pp текущей карты без модов для режима mode и точности acc (в процентах).
func (c *Client) CalculatePP(ctx context.Context, mode state.Mode, acc float64) (float64, error) {
	q := url.Values{}
	q.Set("mode", strconv.Itoa(mode.Code()))
	q.Set("acc", strconv.FormatFloat(acc, 'f', -1, 64))
	q.Set("mods", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/calculate/pp?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body ppResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("calculate pp (acc %v): status %d: %w", acc, resp.StatusCode, err)
	}
	if body.Error != "" {
		return 0, fmt.Errorf("calculate pp (acc %v): %s", acc, body.Error)
	}
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("calculate pp (acc %v): status %d", acc, resp.StatusCode)
	}
	if body.PP == nil {
		return 0, fmt.Errorf("calculate pp (acc %v): no pp in response", acc)
	}
	return *body.PP, nil
}
