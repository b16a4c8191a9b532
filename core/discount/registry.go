// Package discount - Pricer registry
// One pricer per product kind, registered at init time.
package discount

import (
	"fmt"
	"sync"

	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
)

// Pricer evaluates items of one product kind
type Pricer interface {
	// Kind returns the product kind this pricer handles
	Kind() types.ProductKind

	// Evaluate prices one item of the kind
	Evaluate(x *catalog.Index, sel *types.Selection, item Item) (Result, error)
}

// Registry holds registered pricers keyed by product kind
type Registry struct {
	mu      sync.RWMutex
	pricers map[types.ProductKind]Pricer
}

// NewRegistry creates an empty pricer registry
func NewRegistry() *Registry {
	return &Registry{pricers: make(map[types.ProductKind]Pricer)}
}

// Register adds a pricer to the registry.
// Panics on duplicate kinds (fail fast).
func (r *Registry) Register(p Pricer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := p.Kind()
	if !kind.IsValid() {
		panic(fmt.Sprintf("pricer registered for unknown kind: %s", kind))
	}
	if _, exists := r.pricers[kind]; exists {
		panic(fmt.Sprintf("pricer already registered: %s", kind))
	}
	r.pricers[kind] = p
}

// Get returns the pricer for a product kind
func (r *Registry) Get(kind types.ProductKind) (Pricer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pricers[kind]
	return p, ok
}

// GlobalRegistry is the default registry with all kinds registered
var GlobalRegistry = NewRegistry()

// Get gets a pricer from the global registry
func Get(kind types.ProductKind) (Pricer, bool) {
	return GlobalRegistry.Get(kind)
}

func init() {
	GlobalRegistry.Register(tierPricer{kind: types.KindSingleTier})
	GlobalRegistry.Register(tierPricer{kind: types.KindMultiUnit, excludeFirstFromTemporary: true})
	GlobalRegistry.Register(servicePricer{kind: types.KindService})
	GlobalRegistry.Register(servicePricer{kind: types.KindTieredService, tiered: true})
	GlobalRegistry.Register(addOnPricer{})
}
