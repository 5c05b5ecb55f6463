package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/telemetry/logger"
)

// Reconciler assigns registry slugs to the namespaces of an external
// analytics dataset.
type Reconciler struct {
	source  ProjectSource
	metrics Recorder
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithReconcilerMetrics sets the recorder that receives resolution counts.
func WithReconcilerMetrics(m Recorder) ReconcilerOption {
	return func(r *Reconciler) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewReconciler creates a Reconciler that reads the corpus from source.
func NewReconciler(source ProjectSource, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		source:  source,
		metrics: nopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile loads the corpus, builds its lowercased address map for chain
// and resolves every namespace in dataset against it.
func (r *Reconciler) Reconcile(ctx context.Context, dataset domain.NamespaceDataset, chain string) (domain.Resolution, error) {
	projects, stats, err := r.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	r.metrics.ObserveCorpus(stats)

	known := MapAddressesToSlugs(projects, chain, DefaultMapOptions())
	return r.ReconcileKnown(ctx, dataset, chain, known), nil
}

// ReconcileKnown resolves dataset against an existing address -> slug map,
// such as a previously written address snapshot, without loading the corpus.
// Keys of known are matched case-insensitively.
func (r *Reconciler) ReconcileKnown(ctx context.Context, dataset domain.NamespaceDataset, chain string, known map[string]string) domain.Resolution {
	lowered := make(map[string]string, len(known))
	for addr, slug := range known {
		lowered[strings.ToLower(addr)] = slug
	}
	res := ResolveNamespaces(dataset, chain, lowered)

	resolved := res.Resolved()
	r.metrics.ObserveResolution(resolved, len(res)-resolved)
	logger.L(ctx).Info("reconciled namespaces",
		"chain", chain,
		"namespaces", len(res),
		"resolved", resolved,
		"unresolved", len(res)-resolved)

	return res
}

// ResolveNamespaces assigns a slug to each namespace of dataset.
//
// A namespace takes part only if at least one of its addresses lists
// chain; the others are left out of the result entirely. Participating
// namespaces are ranked by that address count, highest first, ties by
// name.
//
// Within a namespace all addresses are scanned in lexical order, whether
// or not they list chain. For each address an explicit slug is taken
// first, then the lowercased address is looked up in known. The first hit
// wins. A namespace with no hit stays in the result unresolved.
func ResolveNamespaces(dataset domain.NamespaceDataset, chain string, known map[string]string) domain.Resolution {
	res := make(domain.Resolution, 0, len(dataset))
	for namespace, addresses := range dataset {
		eligible := 0
		for _, details := range addresses {
			if details.HasNetwork(chain) {
				eligible++
			}
		}
		if eligible == 0 {
			continue
		}
		res = append(res, domain.NamespaceSlug{
			Namespace:    namespace,
			AddressCount: eligible,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].AddressCount != res[j].AddressCount {
			return res[i].AddressCount > res[j].AddressCount
		}
		return res[i].Namespace < res[j].Namespace
	})

	for i := range res {
		res[i].Slug, res[i].Resolved = resolveNamespace(dataset[res[i].Namespace], known)
	}
	return res
}

func resolveNamespace(addresses map[string]domain.AddressDetails, known map[string]string) (string, bool) {
	keys := make([]string, 0, len(addresses))
	for addr := range addresses {
		keys = append(keys, addr)
	}
	sort.Strings(keys)

	for _, addr := range keys {
		if slug := addresses[addr].Slug; slug != "" {
			return slug, true
		}
		if slug, ok := known[strings.ToLower(addr)]; ok && slug != "" {
			return slug, true
		}
	}
	return "", false
}
