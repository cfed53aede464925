package handlers

import (
	"apna/database/kv"
	"apna/services/marketplace"
)

// MarketplaceHandler serves the customer, provider and admin endpoints.
type MarketplaceHandler struct {
	Service marketplace.MarketplaceService
	KV      kv.Store
}

func NewMarketplaceHandler(svc marketplace.MarketplaceService, store kv.Store) *MarketplaceHandler {
	return &MarketplaceHandler{
		Service: svc,
		KV:      store,
	}
}
