package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nazliander/dbt-core/internal/types"
)

// Manifest is the aggregate owner of the parsed graph: nodes, macros,
// and docs keyed by unique ID, plus the generation timestamp. Each
// collection preserves entity-insertion order so that name resolution
// scans are reproducible across runs given identical parse order.
//
// The manifest follows a phased single-writer discipline: AddNodes,
// AddMacros, AddDocs, and PatchNodes mutate it during registration;
// afterwards it is treated as an immutable snapshot for lookups and
// edge derivation. It performs no synchronization of its own.
type Manifest struct {
	nodes      map[string]*types.ParsedNode
	nodeOrder  []string
	macros     map[string]*types.ParsedMacro
	macroOrder []string
	docs       map[string]*types.ParsedDocumentation
	docOrder   []string

	GeneratedAt time.Time
}

func NewManifest(generatedAt time.Time) *Manifest {
	return &Manifest{
		nodes:       map[string]*types.ParsedNode{},
		macros:      map[string]*types.ParsedMacro{},
		docs:        map[string]*types.ParsedDocumentation{},
		GeneratedAt: generatedAt,
	}
}

// AddNodes registers new nodes keyed by their unique IDs. The operation
// is atomic: every incoming ID is checked against the existing node
// mapping (and against the batch itself) before anything is inserted,
// so a collision leaves the manifest untouched.
func (m *Manifest) AddNodes(ctx context.Context, newNodes []*types.ParsedNode) error {
	seen := map[string]*types.ParsedNode{}
	for _, node := range newNodes {
		if existing, ok := m.nodes[node.UniqueID]; ok {
			return duplicateResourceName(node.UniqueID, existing.Name, existing.PackageName, node.Name, node.PackageName)
		}
		if existing, ok := seen[node.UniqueID]; ok {
			return duplicateResourceName(node.UniqueID, existing.Name, existing.PackageName, node.Name, node.PackageName)
		}
		seen[node.UniqueID] = node
	}
	for _, node := range newNodes {
		m.nodes[node.UniqueID] = node
		m.nodeOrder = append(m.nodeOrder, node.UniqueID)
	}
	log.Ctx(ctx).Debug().Int("nodes", len(newNodes)).Msg("nodes registered")
	return nil
}

// AddMacros registers new macros keyed by their unique IDs, with the
// same atomic collision handling as AddNodes.
func (m *Manifest) AddMacros(ctx context.Context, newMacros []*types.ParsedMacro) error {
	seen := map[string]*types.ParsedMacro{}
	for _, macro := range newMacros {
		if existing, ok := m.macros[macro.UniqueID]; ok {
			return duplicateResourceName(macro.UniqueID, existing.Name, existing.PackageName, macro.Name, macro.PackageName)
		}
		if existing, ok := seen[macro.UniqueID]; ok {
			return duplicateResourceName(macro.UniqueID, existing.Name, existing.PackageName, macro.Name, macro.PackageName)
		}
		seen[macro.UniqueID] = macro
	}
	for _, macro := range newMacros {
		m.macros[macro.UniqueID] = macro
		m.macroOrder = append(m.macroOrder, macro.UniqueID)
	}
	log.Ctx(ctx).Debug().Int("macros", len(newMacros)).Msg("macros registered")
	return nil
}

// AddDocs registers new documentation blocks keyed by their unique IDs.
func (m *Manifest) AddDocs(ctx context.Context, newDocs []*types.ParsedDocumentation) error {
	seen := map[string]*types.ParsedDocumentation{}
	for _, doc := range newDocs {
		if existing, ok := m.docs[doc.UniqueID]; ok {
			return duplicateResourceName(doc.UniqueID, existing.Name, existing.PackageName, doc.Name, doc.PackageName)
		}
		if existing, ok := seen[doc.UniqueID]; ok {
			return duplicateResourceName(doc.UniqueID, existing.Name, existing.PackageName, doc.Name, doc.PackageName)
		}
		seen[doc.UniqueID] = doc
	}
	for _, doc := range newDocs {
		m.docs[doc.UniqueID] = doc
		m.docOrder = append(m.docOrder, doc.UniqueID)
	}
	log.Ctx(ctx).Debug().Int("docs", len(newDocs)).Msg("docs registered")
	return nil
}

// Nodes returns the nodes in entity-insertion order.
func (m *Manifest) Nodes() []*types.ParsedNode {
	nodes := make([]*types.ParsedNode, 0, len(m.nodeOrder))
	for _, id := range m.nodeOrder {
		nodes = append(nodes, m.nodes[id])
	}
	return nodes
}

// Macros returns the macros in entity-insertion order.
func (m *Manifest) Macros() []*types.ParsedMacro {
	macros := make([]*types.ParsedMacro, 0, len(m.macroOrder))
	for _, id := range m.macroOrder {
		macros = append(macros, m.macros[id])
	}
	return macros
}

// Docs returns the documentation blocks in entity-insertion order.
func (m *Manifest) Docs() []*types.ParsedDocumentation {
	docs := make([]*types.ParsedDocumentation, 0, len(m.docOrder))
	for _, id := range m.docOrder {
		docs = append(docs, m.docs[id])
	}
	return docs
}

// NodeByID looks up a node by its unique ID.
func (m *Manifest) NodeByID(uniqueID string) (*types.ParsedNode, bool) {
	node, ok := m.nodes[uniqueID]
	return node, ok
}

// PatchNodes merges the given patches, keyed by bare model name, into
// matching model nodes. Matched entries are consumed from the input
// map; unmatched entries remain in it after the call. The merge runs
// in two phases: matches are collected over the node scan first, then
// applied, so the outcome does not depend on mutation during iteration.
//
// Patch matching ignores the package name, mirroring the patch file
// format which carries only model names. With same-named models across
// packages the first model in insertion order receives the patch.
// Patches left over after the scan are reported as warnings and the
// merge continues.
func (m *Manifest) PatchNodes(ctx context.Context, patches map[string]*types.NodePatch) {
	type match struct {
		key   string
		node  *types.ParsedNode
		patch *types.NodePatch
	}
	var matches []match
	consumed := map[string]struct{}{}
	for _, id := range m.nodeOrder {
		node := m.nodes[id]
		if node.ResourceType != types.NodeTypeModel {
			continue
		}
		if _, done := consumed[node.Name]; done {
			continue
		}
		patch, ok := patches[node.Name]
		if !ok {
			continue
		}
		consumed[node.Name] = struct{}{}
		matches = append(matches, match{key: node.Name, node: node, patch: patch})
	}
	for _, matched := range matches {
		matched.node.ApplyPatch(*matched.patch)
		delete(patches, matched.key)
	}
	for name := range patches {
		log.Ctx(ctx).Warn().Str("model", name).
			Msg("found documentation for model which was not found or is disabled")
	}
}

// Serialize derives the dependency edges from the current node set and
// emits the structural contract. Edges are recomputed on every call;
// there is no cached edge state to invalidate.
func (m *Manifest) Serialize(ctx context.Context) (types.WritableManifest, error) {
	forward, backward, err := BuildEdges(m.Nodes())
	if err != nil {
		return types.WritableManifest{}, err
	}
	out := types.WritableManifest{
		Nodes:       make(map[string]types.ParsedNode, len(m.nodes)),
		Macros:      make(map[string]types.ParsedMacro, len(m.macros)),
		Docs:        make(map[string]types.ParsedDocumentation, len(m.docs)),
		GeneratedAt: m.GeneratedAt.UTC().Format(time.RFC3339),
		ParentMap:   backward,
		ChildMap:    forward,
	}
	for id, node := range m.nodes {
		out.Nodes[id] = *node
	}
	for id, macro := range m.macros {
		out.Macros[id] = *macro
	}
	for id, doc := range m.docs {
		out.Docs[id] = *doc
	}
	log.Ctx(ctx).Debug().
		Int("nodes", len(out.Nodes)).
		Int("macros", len(out.Macros)).
		Int("docs", len(out.Docs)).
		Msg("manifest serialized")
	return out, nil
}

// FlatGraph reduces the manifest to the view the compiler consumes:
// nodes as shallow copies, macros passed through unchanged.
func (m *Manifest) FlatGraph() types.FlatGraph {
	flat := types.FlatGraph{
		Nodes:  make(map[string]types.ParsedNode, len(m.nodes)),
		Macros: make(map[string]*types.ParsedMacro, len(m.macros)),
	}
	for id, node := range m.nodes {
		flat.Nodes[id] = *node
	}
	for id, macro := range m.macros {
		flat.Macros[id] = macro
	}
	return flat
}

// FromWritable reconstructs a manifest from a previously serialized
// contract. Entity order is lexicographic by unique ID, which keeps
// resolution deterministic for loaded manifests; parent and child maps
// in the input are ignored and re-derived on the next serialization.
func FromWritable(writable types.WritableManifest) (*Manifest, error) {
	generatedAt := time.Time{}
	if writable.GeneratedAt != "" {
		parsed, err := time.Parse(time.RFC3339, writable.GeneratedAt)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("manifest generated_at is not an RFC 3339 timestamp").
				WithCause(err)
		}
		generatedAt = parsed
	}
	manifest := NewManifest(generatedAt)
	ctx := context.Background()
	if err := manifest.AddNodes(ctx, nodesInOrder(writable.Nodes)); err != nil {
		return nil, err
	}
	if err := manifest.AddMacros(ctx, macrosInOrder(writable.Macros)); err != nil {
		return nil, err
	}
	if err := manifest.AddDocs(ctx, docsInOrder(writable.Docs)); err != nil {
		return nil, err
	}
	return manifest, nil
}

func nodesInOrder(nodes map[string]types.ParsedNode) []*types.ParsedNode {
	ids := sortedKeys(nodes)
	out := make([]*types.ParsedNode, 0, len(ids))
	for _, id := range ids {
		node := nodes[id]
		out = append(out, &node)
	}
	return out
}

func macrosInOrder(macros map[string]types.ParsedMacro) []*types.ParsedMacro {
	ids := sortedKeys(macros)
	out := make([]*types.ParsedMacro, 0, len(ids))
	for _, id := range ids {
		macro := macros[id]
		out = append(out, &macro)
	}
	return out
}

func docsInOrder(docs map[string]types.ParsedDocumentation) []*types.ParsedDocumentation {
	ids := sortedKeys(docs)
	out := make([]*types.ParsedDocumentation, 0, len(ids))
	for _, id := range ids {
		doc := docs[id]
		out = append(out, &doc)
	}
	return out
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func duplicateResourceName(uniqueID, existingName, existingPackage, newName, newPackage string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf(
			"found two resources with the unique ID %s: %s (package %s) and %s (package %s)",
			uniqueID, existingName, existingPackage, newName, newPackage,
		))
}
