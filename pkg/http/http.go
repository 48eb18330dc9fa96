/*
 *  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 *  and associated documentation files (the “Software”), to deal in the Software without restriction,
 *  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 *  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 *  subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all copies or substantial
 *  portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 *  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 *  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 *  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 *  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package http

//go:generate mockgen -destination=../../mocks/http/mock_http.go -package=http -source=http.go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kanzihq/whatsapp-go/pkg/crypto"
	"github.com/kanzihq/whatsapp-go/pkg/types"
)

type (
	CoreClient[T any] struct {
		http        *http.Client
		reqHook     RequestInterceptorFunc
		resHook     ResponseInterceptorFunc
		middlewares []Middleware[T]
		sender      Sender[T]
	}

	CoreClientOption[T any] func(client *CoreClient[T])
)

func (core *CoreClient[T]) SetHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		core.http = httpClient
	}
}

func (core *CoreClient[T]) SetRequestInterceptor(hook RequestInterceptorFunc) {
	core.reqHook = hook
}

func (core *CoreClient[T]) SetBaseSender(sender Sender[T]) {
	core.sender = sender
}

func (core *CoreClient[T]) SetResponseInterceptor(hook ResponseInterceptorFunc) {
	core.resHook = hook
}

func (core *CoreClient[T]) AppendMiddlewares(mws ...Middleware[T]) {
	core.middlewares = append(core.middlewares, mws...)
}

func (core *CoreClient[T]) PrependMiddlewares(mws ...Middleware[T]) {
	core.middlewares = append(mws, core.middlewares...)
}

func WithCoreClientHTTPClient[T any](httpClient *http.Client) CoreClientOption[T] {
	return func(client *CoreClient[T]) {
		client.http = httpClient
	}
}

func WithCoreClientRequestInterceptor[T any](hook RequestInterceptorFunc) CoreClientOption[T] {
	return func(client *CoreClient[T]) {
		client.reqHook = hook
	}
}

func WithCoreClientResponseInterceptor[T any](hook ResponseInterceptorFunc) CoreClientOption[T] {
	return func(client *CoreClient[T]) {
		client.resHook = hook
	}
}

func WithCoreClientMiddlewares[T any](mws ...Middleware[T]) CoreClientOption[T] {
	return func(client *CoreClient[T]) {
		client.middlewares = mws
	}
}

func NewSender[T any](options ...CoreClientOption[T]) *CoreClient[T] {
	core := &CoreClient[T]{
		http: http.DefaultClient,
	}

	core.sender = SenderFunc[T](core.send)

	for _, option := range options {
		if option != nil {
			option(core)
		}
	}

	return core
}

func NewAnySender(options ...CoreClientOption[any]) *CoreClient[any] {
	core := &CoreClient[any]{
		http: http.DefaultClient,
	}

	core.sender = SenderFunc[any](core.send)

	for _, option := range options {
		if option != nil {
			option(core)
		}
	}

	return core
}

func (core *CoreClient[T]) send(ctx context.Context, request *Request[T], decoder ResponseDecoder) error {
	if err := SendFuncWithInterceptors[T](core.http, core.reqHook, core.resHook)(ctx, request, decoder); err != nil {
		return err
	}

	return nil
}

func SendFuncWithInterceptors[T any](client *http.Client, reqHook RequestInterceptorFunc,
	resHook ResponseInterceptorFunc,
) SenderFunc[T] {
	fn := SenderFunc[T](func(ctx context.Context, request *Request[T], decoder ResponseDecoder) error {
		req, err := RequestWithContext(ctx, request)
		if err != nil {
			return err
		}

		if reqHook != nil {
			if errHook := reqHook(ctx, req); errHook != nil {
				return errHook
			}
		}

		response, err := client.Do(req) //nolint:bodyclose
		if err != nil {
			return fmt.Errorf("send request: %w", err)
		}

		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(response.Body)

		if resHook != nil {
			bodyBytes, errRead := io.ReadAll(response.Body)
			if errRead != nil && !errors.Is(errRead, io.EOF) {
				return fmt.Errorf("read response body: %w", errRead)
			}
			response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			if errHook := resHook.InterceptResponse(ctx, response); errHook != nil {
				return errHook
			}
			response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		if err := decoder.Decode(ctx, response); err != nil {
			return fmt.Errorf("core send: decode: %w", err)
		}

		return nil
	})

	return fn
}

func (core *CoreClient[T]) Send(ctx context.Context, request *Request[T], decoder ResponseDecoder) error {
	fn := wrapMiddlewares(core.sender.Send, core.middlewares)

	return fn(ctx, request, decoder)
}

type (
	Sender[T any] interface {
		Send(ctx context.Context, request *Request[T], decoder ResponseDecoder) error
	}

	SenderFunc[T any] func(ctx context.Context, request *Request[T], decoder ResponseDecoder) error

	Middleware[T any] func(next SenderFunc[T]) SenderFunc[T]

	AnySender Sender[any]

	AnySenderFunc SenderFunc[any]
)

func (fn SenderFunc[T]) Send(ctx context.Context, request *Request[T], decoder ResponseDecoder) error {
	return fn(ctx, request, decoder)
}

func (fn AnySenderFunc) Send(ctx context.Context, request *Request[any], decoder ResponseDecoder) error {
	return fn(ctx, request, decoder)
}

func wrapMiddlewares[T any](doFunc SenderFunc[T], middlewares []Middleware[T]) SenderFunc[T] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			doFunc = middlewares[i](doFunc)
		}
	}

	return doFunc
}

type (
	Paging struct {
		Cursors *Cursors `json:"cursors"`
	}

	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	}

	Request[T any] struct {
		Type           RequestType
		Method         string
		Bearer         string
		Headers        map[string]string
		QueryParams    map[string]string
		BaseURL        string
		Endpoints      []string
		Metadata       types.Metadata
		Message        *T
		Form           *RequestForm
		AppSecret      string
		SecureRequests bool
		debugLogLevel  DebugLogLevel
	}

	RequestForm struct {
		Fields   map[string]string
		FormFile *FormFile
	}

	FormFile struct {
		Name string
		Path string
		Type string
		// Reader, when non-nil, supplies the file content instead of opening
		// Path; Filename names the part since there is no path to derive it
		// from.
		Reader   io.Reader
		Filename string
	}

	RequestOption[T any] func(request *Request[T])
)

// MakeRequest creates a new request with the provided options.
func MakeRequest[T any](method, baseURL string, options ...RequestOption[T]) *Request[T] {
	req := &Request[T]{
		Method:      method,
		BaseURL:     baseURL,
		Headers:     make(map[string]string),
		QueryParams: make(map[string]string),
	}

	for _, option := range options {
		if option != nil {
			option(req)
		}
	}

	return req
}

// NewRequestWithContext ...
func NewRequestWithContext[T any](ctx context.Context, method, baseURL string,
	options ...RequestOption[T],
) (*http.Request, error) {
	req := MakeRequest[T](method, baseURL, options...)

	return RequestWithContext(ctx, req)
}

// WithRequestType sets the request type for the request.
func WithRequestType[T any](requestType RequestType) RequestOption[T] {
	return func(request *Request[T]) {
		request.Type = requestType
	}
}

// WithRequestBearer sets the bearer token for the request.
func WithRequestBearer[T any](bearer string) RequestOption[T] {
	return func(request *Request[T]) {
		request.Bearer = bearer
	}
}

// WithRequestEndpoints sets the endpoints for the request.
func WithRequestEndpoints[T any](endpoints ...string) RequestOption[T] {
	return func(request *Request[T]) {
		request.Endpoints = endpoints
	}
}

// WithRequestMetadata sets the metadata for the request.
func WithRequestMetadata[T any](metadata types.Metadata) RequestOption[T] {
	return func(request *Request[T]) {
		request.Metadata = metadata
	}
}

// WithRequestHeaders sets the headers for the request.
func WithRequestHeaders[T any](headers map[string]string) RequestOption[T] {
	return func(request *Request[T]) {
		request.Headers = headers
	}
}

// WithRequestQueryParams sets the query parameters for the request.
func WithRequestQueryParams[T any](queryParams map[string]string) RequestOption[T] {
	return func(request *Request[T]) {
		request.QueryParams = queryParams
	}
}

// WithRequestMessage sets the message for the request.
func WithRequestMessage[T any](message *T) RequestOption[T] {
	return func(request *Request[T]) {
		request.Message = message
	}
}

func WithRequestForm[T any](form *RequestForm) RequestOption[T] {
	return func(request *Request[T]) {
		request.Form = form
	}
}

// WithRequestAppSecret sets the app secret used for the appsecret_proof of the request when
// appSecret is not empty. Secure requests are turned on separately with WithRequestSecured.
func WithRequestAppSecret[T any](appSecret string) RequestOption[T] {
	return func(request *Request[T]) {
		if appSecret != "" {
			request.AppSecret = appSecret
		}
	}
}

// WithRequestSecured sets the request to be secure.
func WithRequestSecured[T any](secured bool) RequestOption[T] {
	return func(request *Request[T]) {
		request.SecureRequests = secured
	}
}

var errNilRequest = errors.New("nil request provided")

func RequestWithContext[T any](ctx context.Context, req *Request[T]) (*http.Request, error) {
	if req == nil {
		return nil, fmt.Errorf("request: %w", errNilRequest)
	}
	ctx = InjectMessageMetadata(ctx, req.Metadata)

	fmtURL, err := url.JoinPath(req.BaseURL, req.Endpoints...)
	if err != nil {
		return nil, fmt.Errorf("format url: %w", err)
	}

	parsedURL, err := url.Parse(fmtURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	q := parsedURL.Query()

	for key, value := range req.QueryParams {
		q.Set(key, value)
	}

	if req.SecureRequests {
		proof, err := crypto.GenerateAppSecretProof(req.Bearer, req.AppSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to generate app secret proof: %w", err)
		}
		q.Set("appsecret_proof", proof)
	}

	parsedURL.RawQuery = q.Encode()

	var body io.Reader
	contentType := "application/json"

	switch {
	case req.Form != nil:
		encodeResp, err := EncodePayload(req.Form)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request form: %w", err)
		}
		body = encodeResp.Body
		contentType = encodeResp.ContentType
	case req.Message != nil:
		encodeResp, err := EncodePayload(req.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
		body = encodeResp.Body
		contentType = encodeResp.ContentType
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, parsedURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}

	r.Header.Set("Content-Type", contentType)

	if req.Bearer != "" {
		r.Header.Set("Authorization", "Bearer "+req.Bearer)
	}

	for key, value := range req.Headers {
		r.Header.Set(key, value)
	}

	return r, nil
}

