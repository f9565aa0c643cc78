package moyskladclient

import (
	"context"
	"net/http"

	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
)

const retailStorePath = "api/remap/1.2/entity/retailstore"

func (c *MoySkladClient) GetRetailStores(ctx context.Context) (*moyskladdomain.RetailStoreList, error) {
	var list moyskladdomain.RetailStoreList
	if _, err := c.requester.Decode(ctx, RequestSpec{Method: http.MethodGet, Path: retailStorePath}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
