package moyskladdomain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do MoySklad
type ErrorResponse struct {
	Errors []ErrorDetails `json:"errors"`
}

type ErrorDetails struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	MoreInfo  string `json:"moreInfo,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

func (e *ErrorResponse) Message() string {
	messages := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s (código %d)", detail.Error, detail.Code))
	}
	return strings.Join(messages, "; ")
}

// APIError é devolvido para qualquer resposta fora da faixa 2xx
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Response   *ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	detail := e.Body
	if e.Response != nil && len(e.Response.Errors) > 0 {
		detail = e.Response.Message()
	}
	return fmt.Sprintf("moysklad: %s %s falhou com status %d: %s", e.Method, e.Path, e.StatusCode, detail)
}

// IsUnauthorized indica que o token precisa ser renovado
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
