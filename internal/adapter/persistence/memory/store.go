// Package memory is a process-local storage backend. It honours the same
// contracts as the DynamoDB repositories (conditional create, version
// compare-and-set, atomic ledger append) so local runs and tests exercise the
// real concurrency rules.
package memory

import (
	"context"
	"sort"
	"sync"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

type Store struct {
	mu        sync.RWMutex
	tickets   map[string]entities.Ticket
	estimates map[string]entities.Estimate
	invoices  map[string]entities.Invoice
	payments  map[string]entities.Payment
	ledgers   map[string][]string
	claims    map[string]entities.WarrantyClaim
	sequences map[string]int64
}

func NewStore() *Store {
	return &Store{
		tickets:   map[string]entities.Ticket{},
		estimates: map[string]entities.Estimate{},
		invoices:  map[string]entities.Invoice{},
		payments:  map[string]entities.Payment{},
		ledgers:   map[string][]string{},
		claims:    map[string]entities.WarrantyClaim{},
		sequences: map[string]int64{},
	}
}

func (s *Store) Tickets() *TicketRepository     { return &TicketRepository{s: s} }
func (s *Store) Estimates() *EstimateRepository { return &EstimateRepository{s: s} }
func (s *Store) Invoices() *InvoiceRepository   { return &InvoiceRepository{s: s} }
func (s *Store) Payments() *PaymentRepository   { return &PaymentRepository{s: s} }
func (s *Store) Claims() *WarrantyClaimRepository {
	return &WarrantyClaimRepository{s: s}
}
func (s *Store) Sequence() *Sequence { return &Sequence{s: s} }

var (
	_ interfaces.ITicketRepository        = (*TicketRepository)(nil)
	_ interfaces.IEstimateRepository      = (*EstimateRepository)(nil)
	_ interfaces.IInvoiceRepository       = (*InvoiceRepository)(nil)
	_ interfaces.IPaymentRepository       = (*PaymentRepository)(nil)
	_ interfaces.IWarrantyClaimRepository = (*WarrantyClaimRepository)(nil)
	_ interfaces.ISequenceGenerator       = (*Sequence)(nil)
)

// Sequence is a per-name counter starting at 1.
type Sequence struct{ s *Store }

func (q *Sequence) Next(_ context.Context, name string) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	q.s.sequences[name]++
	return q.s.sequences[name], nil
}

// create stores v under id unless the id is taken. The stored copy starts at
// version 1.
func create[T any](m map[string]T, id string, v T, setVersion func(*T, int64)) (T, error) {
	if _, ok := m[id]; ok {
		var zero T
		return zero, interfaces.ErrItemExists
	}
	setVersion(&v, 1)
	m[id] = v
	return v, nil
}

// update replaces the stored record when its version still equals version.
func update[T any](m map[string]T, id string, v T, version int64, getVersion func(T) int64, setVersion func(*T, int64)) (T, error) {
	stored, ok := m[id]
	if !ok || getVersion(stored) != version {
		var zero T
		return zero, interfaces.ErrVersionConflict
	}
	setVersion(&v, version+1)
	m[id] = v
	return v, nil
}

func sortByCreation[T any](items []T, key func(T) (int64, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti != tj {
			return ti < tj
		}
		return idi < idj
	})
}
