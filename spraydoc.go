// Package spraydoc post-processes rendered spray documentation sites.
// It links routing-directive names in code samples to their reference
// pages and provides a typeahead engine over the documentation search
// endpoint.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, chi/).
package spraydoc
