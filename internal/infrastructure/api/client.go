package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain"
)

// DefaultTimeout timeout de red para login y peticiones aumentadas.
const DefaultTimeout = 30 * time.Second

const maxBodyBytes = 1 << 20

// StatusError respuesta no 2xx de la API.
// errors.Is lo relaciona con el error de dominio equivalente (401/403 → ErrSessionExpired).
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("API HTTP %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus estado devuelto por la API.
func (e *StatusError) HTTPStatus() int { return e.StatusCode }

// Unwrap mapea el estado HTTP al error de dominio.
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return domain.ErrSessionExpired
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.StatusCode >= 500:
		return domain.ErrServerUnavailable
	}
	return nil
}

// Client cliente JSON de la API de inventario. Todas sus peticiones pasan por el
// http.Client recibido (normalmente con Transport como augmentor).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient arma el http.Client con el augmentor y el timeout (DefaultTimeout si es 0).
func NewHTTPClient(transport http.RoundTripper, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

// NewClient construye el cliente. baseURL suele ser "http://localhost:8080/api".
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Do envía in como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("API: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("API: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrServerUnavailable, ctx.Err())
		}
		return fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrServerUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, rawBody)
	}
	if out == nil || len(bytes.TrimSpace(rawBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("%w: deserializar respuesta: %v", domain.ErrServerUnavailable, err)
	}
	return nil
}

// apiError formatos de error que devuelve la API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status}
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil {
		se.Code = ae.Code
		se.Message = ae.Message
		if se.Message == "" {
			se.Message = ae.Error
		}
		return se
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	se.Message = msg
	return se
}

// IsStatus reporta si err es un StatusError con el código dado.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == status
}
