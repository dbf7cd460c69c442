// Package template defines the renderer-agnostic template contract the HTML
// renderer builds on, plus adapters for concrete engines.
package template
