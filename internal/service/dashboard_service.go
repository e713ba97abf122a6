package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/sim"
)

const (
	bestSellerLimit        = 10
	recentTransactionLimit = 10
)

// DashboardService derives the sales view from the transaction log. Every
// query recomputes from the full log; at this scale that is cheaper than
// maintaining rolling aggregates.
type DashboardService struct {
	txlog    core.TransactionLog
	policy   sim.Policy
	eventBus *events.EventBus
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(txlog core.TransactionLog, policy sim.Policy, eventBus *events.EventBus) *DashboardService {
	return &DashboardService{
		txlog:    txlog,
		policy:   policy,
		eventBus: eventBus,
	}
}

// GetSalesDashboardData aggregates revenue, units sold, transaction count,
// the top best sellers by units (ties keep first-encounter order) and the
// most recent transactions.
func (s *DashboardService) GetSalesDashboardData(ctx context.Context) (*core.DashboardData, error) {
	if err := s.policy.Wait(ctx); err != nil {
		return nil, err
	}

	txns, err := s.txlog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	data := &core.DashboardData{
		TotalSales:         len(txns),
		BestSellingItems:   []core.BestSellingItem{},
		RecentTransactions: []core.Transaction{},
	}

	// Walk the log in stored order (newest first): on a units tie the most
	// recently sold item ranks first, and the title kept for an item id is
	// the one captured at its most recent sale.
	index := make(map[string]int)
	for _, txn := range txns {
		data.TotalRevenue += txn.TotalAmount
		for _, line := range txn.Lines {
			data.TotalItemsSold += line.Quantity
			pos, seen := index[line.ItemID]
			if !seen {
				pos = len(data.BestSellingItems)
				index[line.ItemID] = pos
				data.BestSellingItems = append(data.BestSellingItems, core.BestSellingItem{
					ID:    line.ItemID,
					Title: line.Title,
				})
			}
			data.BestSellingItems[pos].UnitsSold += line.Quantity
			data.BestSellingItems[pos].Revenue += line.UnitPrice * line.Quantity
		}
	}

	sort.SliceStable(data.BestSellingItems, func(i, j int) bool {
		return data.BestSellingItems[i].UnitsSold > data.BestSellingItems[j].UnitsSold
	})
	if len(data.BestSellingItems) > bestSellerLimit {
		data.BestSellingItems = data.BestSellingItems[:bestSellerLimit]
	}

	if len(txns) > recentTransactionLimit {
		txns = txns[:recentTransactionLimit]
	}
	data.RecentTransactions = txns

	return data, nil
}

// GetEventBus returns the event bus for SSE subscriptions
func (s *DashboardService) GetEventBus() *events.EventBus {
	return s.eventBus
}
