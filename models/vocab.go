package models

import "strings"

// Namespace is the base IRI prefix for the Hydra core vocabulary.
const Namespace = "http://www.w3.org/ns/hydra/core#"

// Class IRIs used when classifying graph nodes.
const (
	// TypeCollection marks a collection of member resources.
	TypeCollection = Namespace + "Collection"

	// TypeOperation marks an invocable operation.
	TypeOperation = Namespace + "Operation"

	// TypeAPIDocumentation marks the documentation resource discovered
	// through the apiDocumentation link relation.
	TypeAPIDocumentation = Namespace + "ApiDocumentation"

	// TypeEntryPoint marks the starting resource of an API. Although the
	// IRI lives in the hypermedia namespace, entry points are treated as
	// application data, not hypermedia controls.
	TypeEntryPoint = Namespace + "EntryPoint"
)

// Property IRIs used by the separation engine and the entry-point resolver.
const (
	PropMember     = Namespace + "member"
	PropTotalItems = Namespace + "totalItems"
	PropOperation  = Namespace + "operation"
	PropMethod     = Namespace + "method"
	PropEntryPoint = Namespace + "entrypoint"
)

// RelAPIDocumentation is the Link header relation that points a base URL
// at its API documentation.
const RelAPIDocumentation = Namespace + "apiDocumentation"

// InNamespace reports whether iri is a Hydra core vocabulary term.
func InNamespace(iri string) bool {
	return strings.HasPrefix(iri, Namespace)
}
