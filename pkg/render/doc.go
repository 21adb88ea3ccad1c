// Package render turns VNode trees into HTML.
//
// The renderer is the downstream collaborator of package enhance: it
// places no constraints on how a tree was built or transformed, it just
// walks whatever it is given. Component nodes are expanded by calling
// Component.Render with the props and children carried on the node, text
// is escaped, fragments are flattened, and attribute output is sorted for
// deterministic results.
package render
