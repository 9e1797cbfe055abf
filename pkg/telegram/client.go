// Package telegram provides a small client for the Telegram Bot API.
//
// It covers what the site needs: plain text messages and documents, either by URL
// (Telegram downloads the file) or uploaded as multipart form data.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// DefaultAPIBase is the public Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// Client represents a Telegram bot used to send notifications.
type Client struct {
	token   string       // bot token for authentication
	apiBase string       // API root, overridable for tests
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client for the given bot token.
// An empty apiBase means DefaultAPIBase.
func NewClient(token, apiBase string) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}

	return &Client{
		token:   token,
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  &http.Client{},
	}
}

// sendMessageRequest represents the payload for the sendMessage method.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// sendDocumentRequest represents the payload for sendDocument when the document is a URL.
type sendDocumentRequest struct {
	ChatID   string `json:"chat_id"`
	Document string `json:"document"`
	Caption  string `json:"caption,omitempty"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
}

// SendMessage sends a text message to the chat.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	return c.postJSON(ctx, "sendMessage", sendMessageRequest{ChatID: chatID, Text: text})
}

// SendDocumentURL asks Telegram to fetch documentURL and post it to the chat.
func (c *Client) SendDocumentURL(ctx context.Context, chatID, documentURL, caption string) error {
	return c.postJSON(ctx, "sendDocument", sendDocumentRequest{
		ChatID:   chatID,
		Document: documentURL,
		Caption:  caption,
	})
}

// SendDocument uploads body as a document named filename.
//
// The body is streamed; it is not buffered in memory.
func (c *Client) SendDocument(ctx context.Context, chatID, filename string, body io.Reader, caption string) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeDocumentForm(mw, chatID, filename, body, caption))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendDocument"), pr)
	if err != nil {
		pr.CloseWithError(err)
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func writeDocumentForm(mw *multipart.Writer, chatID, filename string, body io.Reader, caption string) error {
	if err := mw.WriteField("chat_id", chatID); err != nil {
		return err
	}

	if caption != "" {
		if err := mw.WriteField("caption", caption); err != nil {
			return err
		}
	}

	part, err := mw.CreateFormFile("document", filename)
	if err != nil {
		return err
	}

	if _, err := io.Copy(part, body); err != nil {
		return fmt.Errorf("copy document: %w", err)
	}

	return mw.Close()
}

func (c *Client) postJSON(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiResp apiResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiResp)
		if apiResp.Description != "" {
			return fmt.Errorf("telegram API error: %s: %s", resp.Status, apiResp.Description)
		}

		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
