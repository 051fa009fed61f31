package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/otel"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelMethodAttribute = "gateway.method"
	otelStatusAttribute = "gateway.status"
	maxErrorBody        = 512
)

// Client talks to the hotel REST backend. It implements every *API interface.
type Client struct {
	baseURL     string
	http        *http.Client
	credentials Credentials
	otel        otel.Otel
}

func New(cfg *config.Config, credentials Credentials, ot otel.Otel) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		credentials: credentials,
		otel:        ot,
	}
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	public      bool
}

func jsonRequest(method, path string, payload any) (request, error) {
	req := request{method: method, path: path}
	if payload == nil {
		return req, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return req, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req.body = bytes.NewReader(data)
	req.contentType = constant.ContentTypeJSON

	return req, nil
}

// do sends req and decodes a successful body into target.
func (c *Client) do(ctx context.Context, req request, target any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelPathAttributeKey, req.path)
	scope.SetAttribute(otelMethodAttribute, req.method)

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, req.body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if req.contentType != "" {
		httpReq.Header.Set(constant.RequestHeaderContentType, req.contentType)
	}

	httpReq.Header.Set(constant.RequestHeaderRequestID, requestID(ctx))

	// Public endpoints still carry the token when the session has one.
	token, tokenErr := c.credentials.Token(ctx)
	switch {
	case tokenErr == nil && token != "":
		httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	case !req.public:
		if tokenErr == nil {
			tokenErr = failure.LoginRequired
		}

		return tokenErr
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("path", req.path).Msg("backend request failed")

		return failure.BadGateway(fmt.Sprintf("backend unavailable: %s %s", req.method, req.path))
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelStatusAttribute, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.credentials.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("failed to clear rejected session")
		}

		return failure.Unauthorized(errorMessage(body, "session expired, please login again"))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := errorMessage(body, http.StatusText(resp.StatusCode))
		log.Warn().Int("status", resp.StatusCode).Str("path", req.path).Str("message", msg).Msg("backend rejected request")

		return failure.FromStatus(resp.StatusCode, msg)
	}

	if target == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err = json.Unmarshal(body, target); err != nil {
		log.Error().Err(err).Str("path", req.path).Msg("failed to decode backend response")

		return failure.BadGateway("unreadable backend response")
	}

	// The envelope repeats the status; some endpoints answer 200 with a failing statusCode.
	if envelope, ok := target.(*Response); ok && envelope.StatusCode >= http.StatusBadRequest {
		if envelope.StatusCode == http.StatusUnauthorized {
			if clearErr := c.credentials.Clear(ctx); clearErr != nil {
				log.Error().Err(clearErr).Msg("failed to clear rejected session")
			}
		}

		return failure.FromStatus(envelope.StatusCode, envelope.Message)
	}

	return nil
}

func (c *Client) envelope(ctx context.Context, req request) (Response, error) {
	var res Response
	err := c.do(ctx, req, &res)

	return res, err
}

func (c *Client) get(ctx context.Context, path string) (Response, error) {
	return c.envelope(ctx, request{method: http.MethodGet, path: path})
}

func (c *Client) getPublic(ctx context.Context, path string) (Response, error) {
	return c.envelope(ctx, request{method: http.MethodGet, path: path, public: true})
}

func (c *Client) send(ctx context.Context, method, path string, payload any) (Response, error) {
	req, err := jsonRequest(method, path, payload)
	if err != nil {
		return Response{}, err
	}

	return c.envelope(ctx, req)
}

func (c *Client) multipart(ctx context.Context, method, path string, form RoomForm) (Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"roomType":        form.RoomType,
		"roomPrice":       form.RoomPrice,
		"roomDescription": form.RoomDescription,
	}

	for name, value := range fields {
		if value == "" {
			continue
		}

		if err := writer.WriteField(name, value); err != nil {
			return Response{}, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if form.Photo != nil {
		header := make(textproto.MIMEHeader)
		header.Set(constant.RequestHeaderContentDisposition,
			fmt.Sprintf(`form-data; name=%q; filename=%q`, constant.FormFile, form.Photo.Filename))
		header.Set(constant.RequestHeaderContentType, form.Photo.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return Response{}, fmt.Errorf("failed to create photo part: %w", err)
		}

		if _, err = part.Write(form.Photo.Content); err != nil {
			return Response{}, fmt.Errorf("failed to write photo: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return Response{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return c.envelope(ctx, request{
		method:      method,
		path:        path,
		body:        &buf,
		contentType: writer.FormDataContentType(),
	})
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func errorMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}

		if envelope.Error != "" {
			return envelope.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= maxErrorBody && !strings.HasPrefix(text, "<") {
		return text
	}

	return fallback
}

// IsUnauthorized reports whether err is a rejected or missing session.
func IsUnauthorized(err error) bool {
	var fail *failure.Failure

	return errors.As(err, &fail) && fail.Code == http.StatusUnauthorized
}
