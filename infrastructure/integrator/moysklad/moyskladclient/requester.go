package moyskladclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidCredentials indica erro de configuração, nunca é re-tentado
var ErrInvalidCredentials = errors.New("moysklad: credenciais mal formatadas")

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return fmt.Errorf("%w: usuário e senha são obrigatórios", ErrInvalidCredentials)
	}
	// o usuário não pode conter ":" no basic auth
	if strings.Contains(c.Username, ":") {
		return fmt.Errorf("%w: usuário contém ':'", ErrInvalidCredentials)
	}
	return nil
}

type RequestSpec struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Requester executa chamadas autenticadas na API do MoySklad.
// O token fica em cache e é renovado uma única vez quando a API responde 401.
type Requester struct {
	httpClient  *http.Client
	baseURL     *url.URL
	credentials Credentials

	tokenMutex  sync.Mutex
	accessToken string
}

func NewRequester(httpClient *http.Client, baseURL string, credentials Credentials) (*Requester, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	if !strings.HasSuffix(endpoint.Path, "/") {
		endpoint.Path += "/"
	}

	return &Requester{
		httpClient:  httpClient,
		baseURL:     endpoint,
		credentials: credentials,
	}, nil
}

// Do envia a requisição com o token atual. Em caso de 401 obtém um novo
// token e repete a chamada uma única vez; qualquer outra falha é propagada.
func (r *Requester) Do(ctx context.Context, spec RequestSpec) (*Response, error) {
	token, err := r.currentToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.send(ctx, spec, token)
	if err == nil {
		return resp, nil
	}

	var apiErr *moyskladdomain.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsUnauthorized() {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"method": spec.Method,
		"path":   spec.Path,
	}).Warn("moysklad: token recusado, renovando")

	token, err = r.refreshToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return r.send(ctx, spec, token)
}

// Decode executa a requisição e decodifica o corpo JSON em out
func (r *Requester) Decode(ctx context.Context, spec RequestSpec, out any) (*Response, error) {
	resp, err := r.Do(ctx, spec)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de %s: %w", spec.Path, err)
	}

	return resp, nil
}

func (r *Requester) currentToken(ctx context.Context) (string, error) {
	r.tokenMutex.Lock()
	defer r.tokenMutex.Unlock()

	if r.accessToken != "" {
		return r.accessToken, nil
	}

	token, err := r.GetToken(ctx, r.credentials.Username, r.credentials.Password)
	if err != nil {
		return "", err
	}
	r.accessToken = token

	return token, nil
}

// refreshToken troca o token recusado. Se outra goroutine já trocou o token
// enquanto esta esperava o lock, reaproveita o novo sem chamar a API.
func (r *Requester) refreshToken(ctx context.Context, rejected string) (string, error) {
	r.tokenMutex.Lock()
	defer r.tokenMutex.Unlock()

	if r.accessToken != "" && r.accessToken != rejected {
		return r.accessToken, nil
	}

	token, err := r.GetToken(ctx, r.credentials.Username, r.credentials.Password)
	if err != nil {
		r.accessToken = ""
		return "", err
	}
	r.accessToken = token

	return token, nil
}

func (r *Requester) endpoint(path string, query url.Values) *url.URL {
	ref := &url.URL{Path: strings.TrimPrefix(path, "/")}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	return r.baseURL.ResolveReference(ref)
}

func (r *Requester) send(ctx context.Context, spec RequestSpec, token string) (*Response, error) {
	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.endpoint(spec.Path, spec.Query).String(), body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, values := range spec.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")

	return r.execute(req, method, spec.Path)
}

func (r *Requester) execute(req *http.Request, method, path string) (*Response, error) {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta de %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &moyskladdomain.APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(data),
		}
		var errorResponse moyskladdomain.ErrorResponse
		if json.Unmarshal(data, &errorResponse) == nil && len(errorResponse.Errors) > 0 {
			apiErr.Response = &errorResponse
		}
		return nil, apiErr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// readBody descompacta o corpo quando a API responde com gzip
func readBody(resp *http.Response) ([]byte, error) {
	if !strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return io.ReadAll(resp.Body)
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
