package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// GatewayOutbound talks to the WhatsApp HTTP gateway that fronts the
// customer chats.
type GatewayOutbound struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGatewayOutbound(baseURL, token string) *GatewayOutbound {
	return &GatewayOutbound{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GatewayOutbound) SendText(ctx context.Context, to string, text string) error {
	return g.send(ctx, "/send/text", map[string]any{
		"to":   to,
		"body": text,
	})
}

// SendFile sends an attachment by file reference; the gateway resolves the
// path on its side.
func (g *GatewayOutbound) SendFile(ctx context.Context, to string, file string, caption string) error {
	return g.send(ctx, "/send/media", map[string]any{
		"to":      to,
		"file":    file,
		"caption": caption,
	})
}

func (g *GatewayOutbound) send(ctx context.Context, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+path,
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New(
			"gateway error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	return nil
}
