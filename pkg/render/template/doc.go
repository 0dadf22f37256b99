// Package template defines the template engine seam used by markup renderers.
// Engines load named templates from an fs.FS and render them with arbitrary
// data converted to a string-keyed context.
package template
