package moyskladclient

import (
	"context"
	"net/http"
	"time"

	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

type Client interface {
	GetTurnover(ctx context.Context, filters domain.TurnoverFilters) (*moyskladdomain.TurnoverReport, error)
	GetRetailStores(ctx context.Context) (*moyskladdomain.RetailStoreList, error)
}

type MoySkladClient struct {
	requester *Requester
}

func NewClient(cfg *config.Config) (Client, error) {
	timeout := cfg.MoySklad.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	requester, err := NewRequester(
		&http.Client{Timeout: timeout},
		cfg.MoySklad.BaseURL,
		Credentials{Username: cfg.MoySklad.Username, Password: cfg.MoySklad.Password},
	)
	if err != nil {
		return nil, err
	}

	return &MoySkladClient{requester: requester}, nil
}

// NewClientWithRequester permite injetar um Requester já configurado
func NewClientWithRequester(requester *Requester) *MoySkladClient {
	return &MoySkladClient{requester: requester}
}
