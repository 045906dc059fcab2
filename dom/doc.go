// Package dom provides the editor's view of its host document: an Element
// handle over golang.org/x/net/html nodes and an Adapter for the side
// effects the bootstrap needs (reading, writing, hiding, revealing an
// element). The indirection keeps the editor core testable without a real
// browser; hosts with other document representations implement Adapter.
package dom
