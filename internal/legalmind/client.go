// Package legalmind is the HTTP client for the remote LegalMind analysis
// service: document upload and summarization on /simplify, follow-up
// question answering on /ask.
package legalmind

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client calls the remote analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A zero timeout
// leaves slow calls pending until the server responds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SimplifyRequest is one document upload. Prompt is free text passed through
// to the service unvalidated; Model is normalized to the allow-list.
type SimplifyRequest struct {
	Filename string
	File     io.Reader
	Prompt   string
	Model    string
}

// Simplify uploads a PDF for analysis and returns the extracted text and the
// markdown summary. A missing file is rejected locally with a
// ValidationError before any request is sent.
func (c *Client) Simplify(ctx context.Context, req SimplifyRequest) (*AnalysisResult, error) {
	if req.File == nil || req.Filename == "" {
		return nil, &ValidationError{Reason: "No file selected. Please choose a PDF to analyze."}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("pdfFile", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, fmt.Errorf("reading %s: %w", req.Filename, err)
	}
	if err := mw.WriteField("prompt", req.Prompt); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := mw.WriteField("model", NormalizeModel(req.Model)); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/simplify", &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "uploading document", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp)
	}

	var payload simplifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Op: "decoding analysis response", Err: err}
	}
	if payload.Summary == "" || payload.DocumentText == "" {
		return nil, &TransportError{Op: "decoding analysis response", Err: errMalformedResponse}
	}

	return &AnalysisResult{
		Filename: req.Filename,
		Summary:  payload.Summary,
		FullText: payload.DocumentText,
	}, nil
}

// AskRequest is one follow-up question over a loaded document.
type AskRequest struct {
	DocumentText string
	Question     string
	Model        string
}

// Ask sends a question about the document and returns the service's answer.
// Blank questions and missing document text are rejected locally.
func (c *Client) Ask(ctx context.Context, req AskRequest) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", &ValidationError{Reason: "Please enter a question."}
	}
	if req.DocumentText == "" {
		return "", &ValidationError{Reason: "No document is loaded. Analyze a document first."}
	}

	body, err := json.Marshal(map[string]string{
		"document_text": req.DocumentText,
		"question":      req.Question,
		"model":         NormalizeModel(req.Model),
	})
	if err != nil {
		return "", fmt.Errorf("encoding question: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Op: "sending question", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", remoteError(resp)
	}

	var payload askResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &TransportError{Op: "decoding answer", Err: err}
	}
	if payload.Answer == "" {
		return "", &TransportError{Op: "decoding answer", Err: errMalformedResponse}
	}

	return payload.Answer, nil
}

// remoteError reads the {error} payload of a non-2xx response. A missing or
// unreadable message yields a RemoteError with an empty Message, which
// UserMessage renders as the generic fallback.
func remoteError(resp *http.Response) error {
	var payload errorResponse
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		_ = json.Unmarshal(body, &payload)
	}
	return &RemoteError{StatusCode: resp.StatusCode, Message: payload.Error}
}
