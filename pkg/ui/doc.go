// Package ui contains the example compound components built on package
// enhance.
//
// Card demonstrates Map mode: the parent targets Card.Header and
// Card.Footer by display name. Toolbar demonstrates Broadcast mode: every
// component child receives the same prop set. Both rely on the enhancer's
// precedence rule, so sections configured directly keep their own props.
package ui
