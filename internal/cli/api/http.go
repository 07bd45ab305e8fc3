package api

import (
	"TodoKeeper/internal/cli/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound - сервер ответил 404.
var ErrNotFound = errors.New("item not found")

// StatusError - неуспешный ответ сервера.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Client - HTTP-клиент todo API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient создаёт клиента для сервера по адресу baseURL (http://host:port).
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// DoJSON отправляет запрос с JSON-телом (если payload != nil) и возвращает ответ и прочитанное тело.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload any) (*http.Response, []byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

// call выполняет запрос, проверяет код ответа и декодирует JSON в out (если out != nil).
func (c *Client) call(ctx context.Context, method, path string, payload any, want int, out any) error {
	resp, body, err := c.DoJSON(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != want {
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func itemPath(id string) string {
	return "/api/items/" + url.PathEscape(id)
}

// blankID: пустой id превратил бы путь задачи в путь списка.
func blankID(id string) bool {
	return strings.TrimSpace(id) == ""
}

// List возвращает все задачи и счётчики.
func (c *Client) List(ctx context.Context) (*model.ItemList, error) {
	var res model.ItemList
	if err := c.call(ctx, http.MethodGet, "/api/items", nil, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Create создаёт задачу.
func (c *Client) Create(ctx context.Context, name string) (*model.Item, error) {
	var it model.Item
	if err := c.call(ctx, http.MethodPost, "/api/items", map[string]string{"name": name}, http.StatusCreated, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Get возвращает задачу по id.
func (c *Client) Get(ctx context.Context, id string) (*model.Item, error) {
	if blankID(id) {
		return nil, ErrNotFound
	}
	var it model.Item
	if err := c.call(ctx, http.MethodGet, itemPath(id), nil, http.StatusOK, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Rename переименовывает задачу.
func (c *Client) Rename(ctx context.Context, id, name string) (*model.Item, error) {
	if blankID(id) {
		return nil, ErrNotFound
	}
	var it model.Item
	if err := c.call(ctx, http.MethodPut, itemPath(id), map[string]string{"name": name}, http.StatusOK, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Toggle переключает признак выполнения (атомарно на сервере).
func (c *Client) Toggle(ctx context.Context, id string) (*model.Item, error) {
	if blankID(id) {
		return nil, ErrNotFound
	}
	var it model.Item
	if err := c.call(ctx, http.MethodPost, itemPath(id)+"/toggle", nil, http.StatusOK, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Delete удаляет задачу. Отсутствующая задача - не ошибка.
func (c *Client) Delete(ctx context.Context, id string) error {
	if blankID(id) {
		return nil
	}
	return c.call(ctx, http.MethodDelete, itemPath(id), nil, http.StatusNoContent, nil)
}
