package moyskladclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
)

const tokenPath = "api/remap/1.2/security/token"

// GetToken obtém um novo token de acesso usando basic auth
func (r *Requester) GetToken(ctx context.Context, username, password string) (string, error) {
	credentials := Credentials{Username: username, Password: password}
	if err := credentials.Validate(); err != nil {
		return "", err
	}

	logrus.Info("moysklad: solicitando token de acesso")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint(tokenPath, nil).String(), bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}

	req.SetBasicAuth(credentials.Username, credentials.Password)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.execute(req, http.MethodPost, tokenPath)
	if err != nil {
		return "", fmt.Errorf("não foi possível obter o token de acesso do MoySklad: %w", err)
	}

	var tokenResponse moyskladdomain.TokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResponse); err != nil {
		return "", fmt.Errorf("erro ao decodificar o token: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("moysklad: resposta de token sem access_token")
	}

	logrus.Info("moysklad: token de acesso obtido com sucesso")

	return tokenResponse.AccessToken, nil
}
